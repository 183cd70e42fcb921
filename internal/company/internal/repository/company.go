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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/xpecial/internal/company/internal/domain"
	"github.com/ecodeclub/xpecial/internal/company/internal/repository/dao"
)

var ErrCompanyNotFound = errors.New("公司不存在")

type CompanyRepository interface {
	Save(ctx context.Context, c domain.Company) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Company, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type companyRepository struct {
	dao dao.CompanyDAO
}

func NewCompanyRepository(d dao.CompanyDAO) CompanyRepository {
	return &companyRepository{
		dao: d,
	}
}

func (r *companyRepository) Save(ctx context.Context, c domain.Company) (int64, error) {
	return r.dao.Save(ctx, r.domainToEntity(c))
}

func (r *companyRepository) FindById(ctx context.Context, id int64) (domain.Company, error) {
	entity, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Company{}, ErrCompanyNotFound
	}
	if err != nil {
		return domain.Company{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *companyRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Company, error) {
	entities, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.entitiesToDomain(entities), nil
}

func (r *companyRepository) List(ctx context.Context, offset int, limit int) ([]domain.Company, error) {
	entities, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.entitiesToDomain(entities), nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *companyRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.DeleteById(ctx, id)
}

func (r *companyRepository) entitiesToDomain(entities []dao.Company) []domain.Company {
	return slice.Map(entities, func(idx int, src dao.Company) domain.Company {
		return r.entityToDomain(src)
	})
}

func (r *companyRepository) domainToEntity(c domain.Company) dao.Company {
	return dao.Company{
		Id:    c.ID,
		Name:  c.Name,
		Site:  c.Site,
		State: c.State,
		City:  c.City,
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}

func (r *companyRepository) entityToDomain(c dao.Company) domain.Company {
	return domain.Company{
		ID:    c.Id,
		Name:  c.Name,
		Site:  c.Site,
		State: c.State,
		City:  c.City,
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}
