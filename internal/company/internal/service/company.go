// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ecodeclub/xpecial/internal/company/internal/domain"
	"github.com/ecodeclub/xpecial/internal/company/internal/repository"
)

var ErrCompanyNotFound = repository.ErrCompanyNotFound

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks CompanyService
type CompanyService interface {
	Save(ctx context.Context, company domain.Company) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Company, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error)
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) Save(ctx context.Context, company domain.Company) (int64, error) {
	return s.repo.Save(ctx, company)
}

func (s *companyService) GetById(ctx context.Context, id int64) (domain.Company, error) {
	return s.repo.FindById(ctx, id)
}

func (s *companyService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Company, error) {
	if len(ids) == 0 {
		return map[int64]domain.Company{}, nil
	}
	companies, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Company, len(companies))
	for _, company := range companies {
		res[company.ID] = company
	}
	return res, nil
}

func (s *companyService) List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error) {
	companies, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
