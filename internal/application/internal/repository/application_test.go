package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository/cache"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository/dao"
	appmocks "github.com/ecodeclub/xpecial/internal/application/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDAO(t *testing.T) dao.ApplicationDAO {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dao.InitTables(db))
	err = db.Create(&dao.Application{JobID: 1, CompanyID: 1, CandidateID: 10,
		CandidateName: "Maria Silva", Status: domain.StatusApplied.ToUint8()}).Error
	require.NoError(t, err)
	return dao.NewGORMApplicationDAO(db)
}

func TestCachedApplicationRepository_List(t *testing.T) {
	q := domain.Query{Page: 1, Limit: 10}.Normalize()
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) cache.ApplicationCache
		wantTotal int64
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) cache.ApplicationCache {
				c := appmocks.NewMockApplicationCache(ctrl)
				c.EXPECT().GetPage(gomock.Any(), int64(1), q).
					Return(domain.Page{Total: 7}, int64(3), nil)
				return c
			},
			wantTotal: 7,
		},
		{
			name: "未命中用读到的版本号回写",
			mock: func(ctrl *gomock.Controller) cache.ApplicationCache {
				c := appmocks.NewMockApplicationCache(ctrl)
				c.EXPECT().GetPage(gomock.Any(), int64(1), q).
					Return(domain.Page{}, int64(42), cache.ErrPageNotFound)
				c.EXPECT().SetPage(gomock.Any(), int64(1), int64(42), q, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ int64, _ domain.Query, page domain.Page) error {
						assert.Equal(t, int64(1), page.Total)
						return nil
					})
				return c
			},
			wantTotal: 1,
		},
		{
			name: "版本号读取失败不回写",
			mock: func(ctrl *gomock.Controller) cache.ApplicationCache {
				c := appmocks.NewMockApplicationCache(ctrl)
				c.EXPECT().GetPage(gomock.Any(), int64(1), q).
					Return(domain.Page{}, int64(0), errors.New("mock redis error"))
				return c
			},
			wantTotal: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedApplicationRepository(newTestDAO(t), tc.mock(ctrl))
			page, err := repo.List(context.Background(), 1, q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, page.Total)
		})
	}
}
