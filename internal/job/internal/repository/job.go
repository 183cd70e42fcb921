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
	"github.com/ecodeclub/xpecial/internal/job/internal/domain"
	"github.com/ecodeclub/xpecial/internal/job/internal/repository/dao"
)

var ErrJobNotFound = errors.New("职位不存在")

type JobRepository interface {
	Save(ctx context.Context, job domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error)
	ListByCompany(ctx context.Context, companyID int64, offset, limit int) ([]domain.Job, error)
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error)
	IncrApplicationsCount(ctx context.Context, id int64, delta int64) error
	SetApplicationsCount(ctx context.Context, counts map[int64]int64) error
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Save(ctx context.Context, job domain.Job) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(job))
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(job), nil
}

func (r *jobRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error) {
	jobs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomains(jobs), nil
}

func (r *jobRepository) ListByCompany(ctx context.Context, companyID int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListByCompany(ctx, companyID, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(jobs), nil
}

func (r *jobRepository) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	return r.dao.CountByCompany(ctx, companyID)
}

func (r *jobRepository) ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.ListOpen(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(jobs), nil
}

func (r *jobRepository) IncrApplicationsCount(ctx context.Context, id int64, delta int64) error {
	return r.dao.IncrApplicationsCount(ctx, id, delta)
}

func (r *jobRepository) SetApplicationsCount(ctx context.Context, counts map[int64]int64) error {
	return r.dao.SetApplicationsCount(ctx, counts)
}

func (r *jobRepository) toDomains(jobs []dao.Job) []domain.Job {
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	})
}

func (r *jobRepository) toEntity(job domain.Job) dao.Job {
	return dao.Job{
		Id:                job.ID,
		CompanyId:         job.CompanyID,
		Title:             job.Title,
		Description:       job.Description,
		State:             job.State,
		City:              job.City,
		SalaryMin:         job.SalaryMin,
		SalaryMax:         job.SalaryMax,
		WorkMode:          job.WorkMode,
		Type:              job.Type,
		Level:             job.Level,
		Status:            job.Status.ToUint8(),
		ApplicationsCount: job.ApplicationsCount,
		Ctime:             job.Ctime,
		Utime:             job.Utime,
	}
}

func (r *jobRepository) toDomain(job dao.Job) domain.Job {
	return domain.Job{
		ID:                job.Id,
		CompanyID:         job.CompanyId,
		Title:             job.Title,
		Description:       job.Description,
		State:             job.State,
		City:              job.City,
		SalaryMin:         job.SalaryMin,
		SalaryMax:         job.SalaryMax,
		WorkMode:          job.WorkMode,
		Type:              job.Type,
		Level:             job.Level,
		Status:            domain.Status(job.Status),
		ApplicationsCount: job.ApplicationsCount,
		Ctime:             job.Ctime,
		Utime:             job.Utime,
	}
}
