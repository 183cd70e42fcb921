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
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository/cache"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("投递记录不存在")
	ErrAlreadyApplied      = dao.ErrDuplicateApplication
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application_repo.mock.go -package=appmocks ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	// Exists 候选人是否已经投递过这个职位
	Exists(ctx context.Context, jid, uid int64) (bool, error)
	FindByJobId(ctx context.Context, jid int64) ([]domain.Application, error)
	FindByCandidate(ctx context.Context, uid int64) ([]domain.Application, error)
	// List 公司维度分页，companyID 为 0 表示全部公司
	List(ctx context.Context, companyID int64, q domain.Query) (domain.Page, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	UpdateCandidateSnapshot(ctx context.Context, c domain.Candidate) (int64, error)
	CountByStatus(ctx context.Context, companyID int64) ([]domain.StatusCount, error)
	CountByJob(ctx context.Context) (map[int64]int64, error)
	// InvalidateList 让公司维度的列表页缓存失效
	InvalidateList(ctx context.Context, companyID int64)
}

type CachedApplicationRepository struct {
	dao    dao.ApplicationDAO
	cache  cache.ApplicationCache
	logger *elog.Component
}

func NewCachedApplicationRepository(d dao.ApplicationDAO, c cache.ApplicationCache) ApplicationRepository {
	return &CachedApplicationRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedApplicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(app))
}

func (r *CachedApplicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *CachedApplicationRepository) Exists(ctx context.Context, jid, uid int64) (bool, error) {
	_, err := r.dao.FindByJobAndCandidate(ctx, jid, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *CachedApplicationRepository) FindByJobId(ctx context.Context, jid int64) ([]domain.Application, error) {
	apps, err := r.dao.FindByJobId(ctx, jid)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *CachedApplicationRepository) FindByCandidate(ctx context.Context, uid int64) ([]domain.Application, error) {
	apps, err := r.dao.FindByCandidate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *CachedApplicationRepository) List(ctx context.Context, companyID int64, q domain.Query) (domain.Page, error) {
	page, ver, err := r.cache.GetPage(ctx, companyID, q)
	if err == nil {
		return page, nil
	}
	// 版本号都没读到就不回写了
	writeBack := errors.Is(err, cache.ErrPageNotFound)
	if !writeBack {
		r.logger.Warn("读取列表页缓存失败",
			elog.Int64("companyID", companyID),
			elog.FieldErr(err))
	}

	cond := r.toCondition(companyID, q)
	var (
		eg    errgroup.Group
		apps  []dao.Application
		total int64
	)
	eg.Go(func() error {
		var eerr error
		apps, eerr = r.dao.List(ctx, cond)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		total, eerr = r.dao.Count(ctx, cond)
		return eerr
	})
	if err = eg.Wait(); err != nil {
		return domain.Page{}, err
	}
	page = domain.NewPage(slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), total, q)

	if !writeBack {
		return page, nil
	}
	if err = r.cache.SetPage(ctx, companyID, ver, q, page); err != nil {
		r.logger.Warn("回写列表页缓存失败",
			elog.Int64("companyID", companyID),
			elog.FieldErr(err))
	}
	return page, nil
}

func (r *CachedApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *CachedApplicationRepository) UpdateCandidateSnapshot(ctx context.Context, c domain.Candidate) (int64, error) {
	return r.dao.UpdateCandidateSnapshot(ctx, c.ID, c.Name, c.Email)
}

func (r *CachedApplicationRepository) CountByStatus(ctx context.Context, companyID int64) ([]domain.StatusCount, error) {
	cnts, err := r.dao.CountByStatus(ctx, companyID)
	if err != nil {
		return nil, err
	}
	m := make(map[uint8]int64, len(cnts))
	for _, c := range cnts {
		m[c.Status] = c.Cnt
	}
	// 没有数据的状态也要返回 0
	return slice.Map(domain.Statuses(), func(idx int, src domain.Status) domain.StatusCount {
		return domain.StatusCount{Status: src, Count: m[src.ToUint8()]}
	}), nil
}

func (r *CachedApplicationRepository) CountByJob(ctx context.Context) (map[int64]int64, error) {
	cnts, err := r.dao.CountByJob(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(cnts))
	for _, c := range cnts {
		res[c.JobID] = c.Cnt
	}
	return res, nil
}

func (r *CachedApplicationRepository) InvalidateList(ctx context.Context, companyID int64) {
	if err := r.cache.Invalidate(ctx, companyID); err != nil {
		r.logger.Error("列表页缓存失效失败",
			elog.Int64("companyID", companyID),
			elog.FieldErr(err))
	}
}

func (r *CachedApplicationRepository) toCondition(companyID int64, q domain.Query) dao.Condition {
	orderBy := dao.OrderByCtime
	if q.SortBy == domain.SortByName {
		orderBy = dao.OrderByName
	}
	return dao.Condition{
		CompanyID: companyID,
		JobID:     q.JobID,
		Status:    q.Status.ToUint8(),
		Search:    q.Search,
		OrderBy:   orderBy,
		Desc:      q.SortOrder == domain.SortOrderDesc,
		Offset:    q.Offset(),
		Limit:     q.Limit,
	}
}

func (r *CachedApplicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		ID:             app.ID,
		JobID:          app.JobID,
		CompanyID:      app.CompanyID,
		CandidateID:    app.Candidate.ID,
		CandidateName:  app.Candidate.Name,
		CandidateEmail: app.Candidate.Email,
		Status:         app.Status.ToUint8(),
		Message:        app.Message,
		ContactConsent: app.ContactConsent,
		Ctime:          app.Ctime,
		Utime:          app.Utime,
	}
}

func (r *CachedApplicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:        app.ID,
		JobID:     app.JobID,
		CompanyID: app.CompanyID,
		Candidate: domain.Candidate{
			ID:    app.CandidateID,
			Name:  app.CandidateName,
			Email: app.CandidateEmail,
		},
		Status:         domain.Status(app.Status),
		Message:        app.Message,
		ContactConsent: app.ContactConsent,
		Ctime:          app.Ctime,
		Utime:          app.Utime,
	}
}
