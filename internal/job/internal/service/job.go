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
	"errors"

	"github.com/ecodeclub/xpecial/internal/job/internal/domain"
	"github.com/ecodeclub/xpecial/internal/job/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound      = repository.ErrJobNotFound
	ErrPermissionDenied = errors.New("职位不属于当前公司")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks Service
type Service interface {
	// Save 新建或者更新职位，更新的时候职位必须属于 job.CompanyID
	Save(ctx context.Context, job domain.Job) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Job, error)
	ListByCompany(ctx context.Context, companyID int64, offset, limit int) ([]domain.Job, int64, error)
	// ListOpen 候选人可以投递的职位
	ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error)
	IncrApplicationsCount(ctx context.Context, id int64, delta int64) error
	// SetApplicationsCount 用重新统计的结果覆盖冗余的投递数
	SetApplicationsCount(ctx context.Context, counts map[int64]int64) error
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, job domain.Job) (int64, error) {
	if job.ID > 0 {
		old, err := s.repo.FindById(ctx, job.ID)
		if err != nil {
			return 0, err
		}
		if old.CompanyID != job.CompanyID {
			return 0, ErrPermissionDenied
		}
	}
	if job.Status == domain.StatusUnknown {
		job.Status = domain.StatusOpen
	}
	return s.repo.Save(ctx, job)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Job, error) {
	jobs, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Job, len(jobs))
	for _, job := range jobs {
		res[job.ID] = job
	}
	return res, nil
}

func (s *service) ListByCompany(ctx context.Context, companyID int64, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.ListByCompany(ctx, companyID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByCompany(ctx, companyID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (s *service) ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	return s.repo.ListOpen(ctx, offset, limit)
}

func (s *service) IncrApplicationsCount(ctx context.Context, id int64, delta int64) error {
	return s.repo.IncrApplicationsCount(ctx, id, delta)
}

func (s *service) SetApplicationsCount(ctx context.Context, counts map[int64]int64) error {
	return s.repo.SetApplicationsCount(ctx, counts)
}
