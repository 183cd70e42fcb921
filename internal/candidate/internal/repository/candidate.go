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
	"github.com/ecodeclub/xpecial/internal/candidate/internal/domain"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/repository/dao"
)

var ErrProfileNotFound = errors.New("候选人资料不存在")

type CandidateRepository interface {
	Save(ctx context.Context, c domain.Candidate) error
	FindById(ctx context.Context, uid int64) (domain.Candidate, error)
	FindByIds(ctx context.Context, uids []int64) ([]domain.Candidate, error)
}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: d}
}

func (r *candidateRepository) Save(ctx context.Context, c domain.Candidate) error {
	return r.dao.Upsert(ctx, r.toEntity(c))
}

func (r *candidateRepository) FindById(ctx context.Context, uid int64) (domain.Candidate, error) {
	c, err := r.dao.FindById(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Candidate{}, ErrProfileNotFound
	}
	if err != nil {
		return domain.Candidate{}, err
	}
	return r.toDomain(c), nil
}

func (r *candidateRepository) FindByIds(ctx context.Context, uids []int64) ([]domain.Candidate, error) {
	cs, err := r.dao.FindByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Candidate) domain.Candidate {
		return r.toDomain(src)
	}), nil
}

func (r *candidateRepository) toEntity(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		Id:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Headline: c.Headline,
		State:    c.State,
		City:     c.City,
	}
}

func (r *candidateRepository) toDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:       c.Id,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Headline: c.Headline,
		State:    c.State,
		City:     c.City,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}
