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
	"time"

	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/event"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository"
	"github.com/ecodeclub/xpecial/internal/application/internal/view"
	"github.com/ecodeclub/xpecial/internal/candidate"
	"github.com/ecodeclub/xpecial/internal/job"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	ErrAlreadyApplied      = repository.ErrAlreadyApplied
	ErrInvalidStatus       = domain.ErrInvalidStatus
	ErrJobNotFound         = job.ErrJobNotFound
	ErrPermissionDenied    = errors.New("投递不属于当前公司")
	ErrJobClosed           = errors.New("职位已关闭")
	ErrProfileRequired     = errors.New("请先完善个人资料")
	ErrEmptySelection      = errors.New("没有选中任何投递")
)

const defaultBulkConcurrency = 8

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=appmocks Service
type Service interface {
	// Apply 候选人投递，状态总是从 APPLIED 开始
	Apply(ctx context.Context, app domain.Application) (int64, error)
	// SetStatus 任意状态之间都可以流转，companyID 为 0 表示管理员操作，不校验归属
	SetStatus(ctx context.Context, companyID, id int64, status domain.Status) error
	// BulkSetStatus 并发更新，不保证全部成功，每一条的结果都在 BulkResult 里面
	BulkSetStatus(ctx context.Context, companyID int64, ids []int64, status domain.Status) (domain.BulkResult, error)
	Detail(ctx context.Context, companyID, id int64) (domain.Application, error)
	// List 公司维度的列表，数据库分页
	List(ctx context.Context, companyID int64, q domain.Query) (domain.Page, error)
	// ListByJob 职位维度的列表，全部取回之后内存分页
	ListByJob(ctx context.Context, companyID, jid int64, q domain.Query) (domain.Page, error)
	// JobApplications 职位详情里面嵌套的全部投递
	JobApplications(ctx context.Context, companyID, jid int64) (job.Job, []domain.Application, error)
	ListByCandidate(ctx context.Context, uid int64) ([]domain.Application, error)
	CountByStatus(ctx context.Context, companyID int64) ([]domain.StatusCount, error)
	SyncCandidate(ctx context.Context, c domain.Candidate) error
}

type service struct {
	repo            repository.ApplicationRepository
	producer        event.ApplicationEventProducer
	jobSvc          job.Service
	candidateSvc    candidate.Service
	bulkConcurrency int
	metrics         *bulkMetrics
	logger          *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	producer event.ApplicationEventProducer,
	jobSvc job.Service,
	candidateSvc candidate.Service) Service {
	concurrency := econf.GetInt("application.bulk.concurrency")
	if concurrency <= 0 {
		concurrency = defaultBulkConcurrency
	}
	return &service{
		repo:            repo,
		producer:        producer,
		jobSvc:          jobSvc,
		candidateSvc:    candidateSvc,
		bulkConcurrency: concurrency,
		metrics:         newBulkMetrics(),
		logger:          elog.DefaultLogger,
	}
}

func (s *service) Apply(ctx context.Context, app domain.Application) (int64, error) {
	jb, err := s.jobSvc.Detail(ctx, app.JobID)
	if err != nil {
		return 0, err
	}
	if !jb.Open() {
		return 0, ErrJobClosed
	}
	profile, err := s.candidateSvc.Profile(ctx, app.Candidate.ID)
	if errors.Is(err, candidate.ErrProfileNotFound) {
		return 0, ErrProfileRequired
	}
	if err != nil {
		return 0, err
	}
	exists, err := s.repo.Exists(ctx, app.JobID, app.Candidate.ID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrAlreadyApplied
	}

	app.CompanyID = jb.CompanyID
	app.Candidate.Name = profile.Name
	app.Candidate.Email = profile.Email
	app.Status = domain.StatusApplied
	id, err := s.repo.Create(ctx, app)
	if err != nil {
		return 0, err
	}
	s.produce(ctx, event.ApplicationEvent{
		Type:        event.TypeCreated,
		Aid:         id,
		JobID:       app.JobID,
		CompanyID:   app.CompanyID,
		CandidateID: app.Candidate.ID,
		Status:      app.Status.String(),
		Utime:       time.Now().UnixMilli(),
	})
	s.repo.InvalidateList(ctx, app.CompanyID)
	return id, nil
}

func (s *service) SetStatus(ctx context.Context, companyID, id int64, status domain.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	app, changed, err := s.setStatus(ctx, companyID, id, status)
	if err != nil {
		return err
	}
	if changed {
		s.repo.InvalidateList(ctx, app.CompanyID)
	}
	return nil
}

// setStatus 不处理缓存，批量的时候等全部结束再统一失效
func (s *service) setStatus(ctx context.Context, companyID, id int64, status domain.Status) (domain.Application, bool, error) {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, false, err
	}
	if companyID > 0 && app.CompanyID != companyID {
		return domain.Application{}, false, ErrPermissionDenied
	}
	if app.Status == status {
		return app, false, nil
	}
	err = s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Application{}, false, err
	}
	s.produce(ctx, event.ApplicationEvent{
		Type:        event.TypeStatusChanged,
		Aid:         app.ID,
		JobID:       app.JobID,
		CompanyID:   app.CompanyID,
		CandidateID: app.Candidate.ID,
		Status:      status.String(),
		OldStatus:   app.Status.String(),
		Utime:       time.Now().UnixMilli(),
	})
	app.Status = status
	return app, true, nil
}

func (s *service) produce(ctx context.Context, evt event.ApplicationEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送投递事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *service) Detail(ctx context.Context, companyID, id int64) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if companyID > 0 && app.CompanyID != companyID {
		return domain.Application{}, ErrPermissionDenied
	}
	return app, nil
}

func (s *service) List(ctx context.Context, companyID int64, q domain.Query) (domain.Page, error) {
	return s.fetch(ctx, &remotePager{repo: s.repo, companyID: companyID}, q)
}

func (s *service) ListByJob(ctx context.Context, companyID, jid int64, q domain.Query) (domain.Page, error) {
	_, apps, err := s.JobApplications(ctx, companyID, jid)
	if err != nil {
		return domain.Page{}, err
	}
	// 已经限定在这个职位了
	q.JobID = 0
	return s.fetch(ctx, view.NewMemoryPager(apps), q)
}

func (s *service) fetch(ctx context.Context, pager view.Pager, q domain.Query) (domain.Page, error) {
	return pager.FetchPage(ctx, q.Normalize())
}

func (s *service) JobApplications(ctx context.Context, companyID, jid int64) (job.Job, []domain.Application, error) {
	jb, err := s.jobSvc.Detail(ctx, jid)
	if err != nil {
		return job.Job{}, nil, err
	}
	if companyID > 0 && jb.CompanyID != companyID {
		return job.Job{}, nil, ErrPermissionDenied
	}
	apps, err := s.repo.FindByJobId(ctx, jid)
	if err != nil {
		return job.Job{}, nil, err
	}
	return jb, apps, nil
}

func (s *service) ListByCandidate(ctx context.Context, uid int64) ([]domain.Application, error) {
	return s.repo.FindByCandidate(ctx, uid)
}

func (s *service) CountByStatus(ctx context.Context, companyID int64) ([]domain.StatusCount, error) {
	return s.repo.CountByStatus(ctx, companyID)
}

func (s *service) SyncCandidate(ctx context.Context, c domain.Candidate) error {
	cnt, err := s.repo.UpdateCandidateSnapshot(ctx, c)
	if err != nil {
		return err
	}
	if cnt > 0 {
		// 不知道涉及哪些公司，只能让全部列表失效，好在资料修改频率很低
		apps, err := s.repo.FindByCandidate(ctx, c.ID)
		if err != nil {
			return err
		}
		invalidated := make(map[int64]struct{}, len(apps))
		for _, app := range apps {
			if _, ok := invalidated[app.CompanyID]; ok {
				continue
			}
			invalidated[app.CompanyID] = struct{}{}
			s.repo.InvalidateList(ctx, app.CompanyID)
		}
	}
	return nil
}

// remotePager 数据库分页
type remotePager struct {
	repo      repository.ApplicationRepository
	companyID int64
}

func (p *remotePager) FetchPage(ctx context.Context, q domain.Query) (domain.Page, error) {
	return p.repo.List(ctx, p.companyID, q)
}
