package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/event"
	appmocks "github.com/ecodeclub/xpecial/internal/application/mocks"
	"github.com/ecodeclub/xpecial/internal/candidate"
	candidatemocks "github.com/ecodeclub/xpecial/internal/candidate/mocks"
	"github.com/ecodeclub/xpecial/internal/job"
	jobmocks "github.com/ecodeclub/xpecial/internal/job/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCompanyID int64 = 11
	testJobID     int64 = 101
	testUid       int64 = 1001
)

type mocks struct {
	repo         *appmocks.MockApplicationRepository
	producer     *appmocks.MockApplicationEventProducer
	jobSvc       *jobmocks.MockService
	candidateSvc *candidatemocks.MockService
}

func newTestService(ctrl *gomock.Controller) (*service, mocks) {
	m := mocks{
		repo:         appmocks.NewMockApplicationRepository(ctrl),
		producer:     appmocks.NewMockApplicationEventProducer(ctrl),
		jobSvc:       jobmocks.NewMockService(ctrl),
		candidateSvc: candidatemocks.NewMockService(ctrl),
	}
	svc := NewService(m.repo, m.producer, m.jobSvc, m.candidateSvc).(*service)
	return svc, m
}

func openJob() job.Job {
	return job.Job{ID: testJobID, CompanyID: testCompanyID, Title: "Go 工程师", Status: job.StatusOpen}
}

func TestService_Apply(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantID  int64
		wantErr error
	}{
		{
			name: "投递成功",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
				m.candidateSvc.EXPECT().Profile(gomock.Any(), testUid).Return(candidate.Candidate{
					ID: testUid, Name: "Maria Silva", Email: "maria@example.com",
				}, nil)
				m.repo.EXPECT().Exists(gomock.Any(), testJobID, testUid).Return(false, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application) (int64, error) {
						assert.Equal(t, testCompanyID, app.CompanyID)
						assert.Equal(t, domain.StatusApplied, app.Status)
						assert.Equal(t, domain.Candidate{ID: testUid, Name: "Maria Silva", Email: "maria@example.com"}, app.Candidate)
						assert.Equal(t, "你好", app.Message)
						return 1, nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationEvent) error {
						assert.Equal(t, event.TypeCreated, evt.Type)
						assert.Equal(t, int64(1), evt.Aid)
						assert.Equal(t, testJobID, evt.JobID)
						assert.Equal(t, "APPLIED", evt.Status)
						return nil
					})
				m.repo.EXPECT().InvalidateList(gomock.Any(), testCompanyID)
			},
			wantID: 1,
		},
		{
			name: "发送事件失败不影响投递",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
				m.candidateSvc.EXPECT().Profile(gomock.Any(), testUid).Return(candidate.Candidate{ID: testUid}, nil)
				m.repo.EXPECT().Exists(gomock.Any(), testJobID, testUid).Return(false, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq error"))
				m.repo.EXPECT().InvalidateList(gomock.Any(), testCompanyID)
			},
			wantID: 2,
		},
		{
			name: "职位不存在",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "职位已关闭",
			mock: func(m mocks) {
				jb := openJob()
				jb.Status = job.StatusClosed
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(jb, nil)
			},
			wantErr: ErrJobClosed,
		},
		{
			name: "没有个人资料",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
				m.candidateSvc.EXPECT().Profile(gomock.Any(), testUid).Return(candidate.Candidate{}, candidate.ErrProfileNotFound)
			},
			wantErr: ErrProfileRequired,
		},
		{
			name: "重复投递",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
				m.candidateSvc.EXPECT().Profile(gomock.Any(), testUid).Return(candidate.Candidate{ID: testUid}, nil)
				m.repo.EXPECT().Exists(gomock.Any(), testJobID, testUid).Return(true, nil)
			},
			wantErr: ErrAlreadyApplied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)
			tc.mock(m)
			id, err := svc.Apply(context.Background(), domain.Application{
				JobID:     testJobID,
				Candidate: domain.Candidate{ID: testUid},
				Message:   "你好",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	t.Parallel()
	const aid int64 = 1
	app := func(status domain.Status) domain.Application {
		return domain.Application{
			ID: aid, JobID: testJobID, CompanyID: testCompanyID,
			Candidate: domain.Candidate{ID: testUid}, Status: status,
		}
	}
	testCases := []struct {
		name      string
		companyID int64
		status    domain.Status
		mock      func(m mocks)
		wantErr   error
	}{
		{
			// 没有终态，HIRED 也可以回到 INTERVIEW
			name:      "从已录用回到面试",
			companyID: testCompanyID,
			status:    domain.StatusInterview,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(app(domain.StatusHired), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), aid, domain.StatusInterview).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationEvent) error {
						assert.Equal(t, event.TypeStatusChanged, evt.Type)
						assert.Equal(t, "INTERVIEW", evt.Status)
						assert.Equal(t, "HIRED", evt.OldStatus)
						return nil
					})
				m.repo.EXPECT().InvalidateList(gomock.Any(), testCompanyID)
			},
		},
		{
			name:      "从已拒绝回到初筛",
			companyID: testCompanyID,
			status:    domain.StatusScreening,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(app(domain.StatusRejected), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), aid, domain.StatusScreening).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().InvalidateList(gomock.Any(), testCompanyID)
			},
		},
		{
			name:      "状态没有变化",
			companyID: testCompanyID,
			status:    domain.StatusScreening,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(app(domain.StatusScreening), nil)
			},
		},
		{
			name:      "管理员不校验归属",
			companyID: 0,
			status:    domain.StatusRejected,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(app(domain.StatusApplied), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), aid, domain.StatusRejected).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().InvalidateList(gomock.Any(), testCompanyID)
			},
		},
		{
			name:      "非法状态",
			companyID: testCompanyID,
			status:    domain.Status(9),
			mock:      func(m mocks) {},
			wantErr:   ErrInvalidStatus,
		},
		{
			name:      "投递不存在",
			companyID: testCompanyID,
			status:    domain.StatusHired,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(domain.Application{}, ErrApplicationNotFound)
			},
			wantErr: ErrApplicationNotFound,
		},
		{
			name:      "其他公司的投递",
			companyID: testCompanyID + 1,
			status:    domain.StatusHired,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(app(domain.StatusApplied), nil)
			},
			wantErr: ErrPermissionDenied,
		},
		{
			name:      "更新失败",
			companyID: testCompanyID,
			status:    domain.StatusHired,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), aid).Return(app(domain.StatusApplied), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), aid, domain.StatusHired).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)
			tc.mock(m)
			err := svc.SetStatus(context.Background(), tc.companyID, aid, tc.status)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestService_SetStatus_Idempotent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newTestService(ctrl)
	const aid int64 = 1
	current := domain.Application{ID: aid, CompanyID: testCompanyID, Status: domain.StatusApplied}
	m.repo.EXPECT().FindById(gomock.Any(), aid).DoAndReturn(
		func(ctx context.Context, id int64) (domain.Application, error) {
			return current, nil
		}).Times(2)
	// 第二次调用不会再更新，也不会再发事件
	m.repo.EXPECT().UpdateStatus(gomock.Any(), aid, domain.StatusHired).
		DoAndReturn(func(ctx context.Context, id int64, status domain.Status) error {
			current.Status = status
			return nil
		}).Times(1)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.repo.EXPECT().InvalidateList(gomock.Any(), testCompanyID).Times(1)

	require.NoError(t, svc.SetStatus(context.Background(), testCompanyID, aid, domain.StatusHired))
	require.NoError(t, svc.SetStatus(context.Background(), testCompanyID, aid, domain.StatusHired))
	assert.Equal(t, domain.StatusHired, current.Status)
}

func TestService_Detail(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newTestService(ctrl)
	app := domain.Application{ID: 1, CompanyID: testCompanyID}
	m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(app, nil).Times(3)

	got, err := svc.Detail(context.Background(), testCompanyID, 1)
	require.NoError(t, err)
	assert.Equal(t, app, got)

	_, err = svc.Detail(context.Background(), testCompanyID+1, 1)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	got, err = svc.Detail(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, app, got)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newTestService(ctrl)
	want := domain.Page{Items: []domain.Application{{ID: 1}}, Total: 1, TotalPages: 1, Page: 1, Limit: domain.DefaultLimit}
	m.repo.EXPECT().List(gomock.Any(), testCompanyID, domain.Query{
		Search:    "maria",
		Status:    domain.StatusApplied,
		SortBy:    domain.SortByCtime,
		SortOrder: domain.SortOrderDesc,
		Page:      1,
		Limit:     domain.DefaultLimit,
	}).Return(want, nil)

	got, err := svc.List(context.Background(), testCompanyID, domain.Query{
		Search: " maria ",
		Status: domain.StatusApplied,
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_ListByJob(t *testing.T) {
	t.Parallel()
	apps := []domain.Application{
		{ID: 3, JobID: testJobID, CompanyID: testCompanyID, Status: domain.StatusApplied, Ctime: 3, Candidate: domain.Candidate{Name: "Maria Silva"}},
		{ID: 2, JobID: testJobID, CompanyID: testCompanyID, Status: domain.StatusScreening, Ctime: 2, Candidate: domain.Candidate{Name: "João Santos"}},
		{ID: 1, JobID: testJobID, CompanyID: testCompanyID, Status: domain.StatusApplied, Ctime: 1, Candidate: domain.Candidate{Name: "Ana Costa"}},
	}
	testCases := []struct {
		name      string
		companyID int64
		q         domain.Query
		mock      func(m mocks)
		wantIDs   []int64
		wantTotal int64
		wantErr   error
	}{
		{
			name:      "按状态过滤",
			companyID: testCompanyID,
			q:         domain.Query{Status: domain.StatusApplied},
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
				m.repo.EXPECT().FindByJobId(gomock.Any(), testJobID).Return(apps, nil)
			},
			wantIDs:   []int64{3, 1},
			wantTotal: 2,
		},
		{
			// 查询参数里面的职位会被忽略
			name:      "忽略职位条件",
			companyID: testCompanyID,
			q:         domain.Query{JobID: testJobID + 1, Limit: 2, Page: 2},
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
				m.repo.EXPECT().FindByJobId(gomock.Any(), testJobID).Return(apps, nil)
			},
			wantIDs:   []int64{1},
			wantTotal: 3,
		},
		{
			name:      "其他公司的职位",
			companyID: testCompanyID + 1,
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(openJob(), nil)
			},
			wantErr: ErrPermissionDenied,
		},
		{
			name:      "职位不存在",
			companyID: testCompanyID,
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), testJobID).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)
			tc.mock(m)
			page, err := svc.ListByJob(context.Background(), tc.companyID, testJobID, tc.q)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			ids := make([]int64, 0, len(page.Items))
			for _, app := range page.Items {
				ids = append(ids, app.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantTotal, page.Total)
		})
	}
}

func TestService_SyncCandidate(t *testing.T) {
	t.Parallel()
	c := domain.Candidate{ID: testUid, Name: "Maria", Email: "maria@example.com"}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "没有投递记录",
			mock: func(m mocks) {
				m.repo.EXPECT().UpdateCandidateSnapshot(gomock.Any(), c).Return(int64(0), nil)
			},
		},
		{
			name: "每个公司只失效一次",
			mock: func(m mocks) {
				m.repo.EXPECT().UpdateCandidateSnapshot(gomock.Any(), c).Return(int64(3), nil)
				m.repo.EXPECT().FindByCandidate(gomock.Any(), testUid).Return([]domain.Application{
					{ID: 1, CompanyID: 1}, {ID: 2, CompanyID: 2}, {ID: 3, CompanyID: 1},
				}, nil)
				m.repo.EXPECT().InvalidateList(gomock.Any(), int64(1)).Times(1)
				m.repo.EXPECT().InvalidateList(gomock.Any(), int64(2)).Times(1)
			},
		},
		{
			name: "更新失败",
			mock: func(m mocks) {
				m.repo.EXPECT().UpdateCandidateSnapshot(gomock.Any(), c).Return(int64(0), ErrApplicationNotFound)
			},
			wantErr: ErrApplicationNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)
			tc.mock(m)
			err := svc.SyncCandidate(context.Background(), c)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
