package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/xpecial/internal/job/internal/domain"
	"github.com/ecodeclub/xpecial/internal/job/internal/repository"
	"github.com/ecodeclub/xpecial/internal/job/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc Service
}

func (s *ServiceTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(s.T(), err)
	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(s.T(), dao.InitTables(db))
	s.db = db
	s.svc = NewService(repository.NewJobRepository(dao.NewGORMJobDAO(db)))
}

func (s *ServiceTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM jobs").Error)
}

func (s *ServiceTestSuite) TestSave() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.Save(ctx, domain.Job{CompanyID: 1, Title: "Go 工程师", SalaryMin: 8000, SalaryMax: 12000})
	require.NoError(t, err)

	job, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	// 新职位默认开放
	assert.Equal(t, domain.StatusOpen, job.Status)
	assert.True(t, job.Open())
	assert.Equal(t, int64(12000), job.SalaryMax)

	_, err = s.svc.Save(ctx, domain.Job{ID: id, CompanyID: 2, Title: "抢过来"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = s.svc.Save(ctx, domain.Job{ID: id + 100, CompanyID: 1, Title: "不存在"})
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = s.svc.Save(ctx, domain.Job{ID: id, CompanyID: 1, Title: "Go 工程师", Status: domain.StatusClosed})
	require.NoError(t, err)
	job, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.False(t, job.Open())

	_, err = s.svc.Detail(ctx, id+100)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func (s *ServiceTestSuite) TestList() {
	t := s.T()
	ctx := context.Background()
	ids := make([]int64, 0, 4)
	for i := 0; i < 4; i++ {
		status := domain.StatusOpen
		if i == 3 {
			status = domain.StatusClosed
		}
		id, err := s.svc.Save(ctx, domain.Job{CompanyID: 5, Title: "job", Status: status})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	jobs, total, err := s.svc.ListByCompany(ctx, 5, 0, 3)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Equal(t, int64(4), total)

	open, err := s.svc.ListOpen(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, open, 3)

	m, err := s.svc.GetByIds(ctx, ids[:2])
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, ids[0], m[ids[0]].ID)
}

func (s *ServiceTestSuite) TestApplicationsCount() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.Save(ctx, domain.Job{CompanyID: 1, Title: "job"})
	require.NoError(t, err)

	require.NoError(t, s.svc.IncrApplicationsCount(ctx, id, 1))
	require.NoError(t, s.svc.IncrApplicationsCount(ctx, id, 1))
	job, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), job.ApplicationsCount)

	require.NoError(t, s.svc.SetApplicationsCount(ctx, map[int64]int64{id: 5}))
	job, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), job.ApplicationsCount)
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
