//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/company/internal/integration/startup"
	comdao "github.com/ecodeclub/xpecial/internal/company/internal/repository/dao"
	"github.com/ecodeclub/xpecial/internal/company/internal/web"
	"github.com/ecodeclub/xpecial/internal/test"
	testioc "github.com/ecodeclub/xpecial/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CompanyTestSuite struct {
	suite.Suite
	// 管理后台
	admin *egin.Component
	// 公开接口，职位列表页展示公司信息
	public *egin.Component
	db     *egorm.Component
	dao    comdao.CompanyDAO
	svc    company.Service
}

func (s *CompanyTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	admin := egin.Load("server").Build()
	admin.Use(func(ctx *gin.Context) {
		ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"role": "admin"},
		}))
	})
	module.AdminHdl.PrivateRoutes(admin.Engine)

	econf.Set("cServer", map[string]any{"contextTimeout": "1s"})
	public := egin.Load("cServer").Build()
	module.Hdl.PublicRoutes(public.Engine)

	s.admin = admin
	s.public = public
	s.svc = module.Svc
	s.db = testioc.InitDB()
	s.dao = comdao.NewGORMCompanyDAO(s.db)
}

func (s *CompanyTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `companies`").Error)
}

func (s *CompanyTestSuite) create(t *testing.T, companies ...comdao.Company) {
	for _, c := range companies {
		require.NoError(t, s.db.WithContext(context.Background()).Create(&c).Error)
	}
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *CompanyTestSuite) Test_Save() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		req    web.SaveCompanyReq
		after  func(t *testing.T, id int64)
	}{
		{
			name:   "创建公司",
			before: func(t *testing.T) {},
			req: web.SaveCompanyReq{Name: "  Tech Solutions  ", Site: "https://tech.example.com",
				State: "SP", City: "São Paulo"},
			after: func(t *testing.T, id int64) {
				got, err := s.dao.FindById(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, "Tech Solutions", got.Name)
				assert.Equal(t, "https://tech.example.com", got.Site)
				assert.Equal(t, "SP", got.State)
				assert.Equal(t, "São Paulo", got.City)
				assert.NotZero(t, got.Ctime)
				assert.NotZero(t, got.Utime)
			},
		},
		{
			name: "更新公司保留创建时间",
			before: func(t *testing.T) {
				s.create(t, comdao.Company{Id: 2000, Name: "Old Name", State: "SP", City: "São Paulo", Ctime: 123, Utime: 123})
			},
			req: web.SaveCompanyReq{ID: 2000, Name: "New Name", State: "PR", City: "Curitiba"},
			after: func(t *testing.T, id int64) {
				assert.Equal(t, int64(2000), id)
				got, err := s.dao.FindById(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, "New Name", got.Name)
				assert.Equal(t, "PR", got.State)
				assert.Equal(t, "Curitiba", got.City)
				assert.Equal(t, int64(123), got.Ctime)
				assert.Greater(t, got.Utime, int64(123))
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			res := post[int64](t, s.admin, "/companies/save", tc.req)
			require.Equal(t, 0, res.Code)
			tc.after(t, res.Data)
		})
	}
}

func (s *CompanyTestSuite) Test_Detail() {
	s.create(s.T(), comdao.Company{Id: 10, Name: "Detail Co", Site: "https://detail.example.com",
		State: "RJ", City: "Rio de Janeiro", Ctime: 1, Utime: 2})
	testCases := []struct {
		name     string
		server   *egin.Component
		id       int64
		wantCode int
		wantVO   web.CompanyVO
	}{
		{
			name:   "管理后台",
			server: s.admin,
			id:     10,
			wantVO: web.CompanyVO{ID: 10, Name: "Detail Co", Site: "https://detail.example.com",
				State: "RJ", City: "Rio de Janeiro", Ctime: 1, Utime: 2},
		},
		{
			name:   "公开接口",
			server: s.public,
			id:     10,
			wantVO: web.CompanyVO{ID: 10, Name: "Detail Co", Site: "https://detail.example.com",
				State: "RJ", City: "Rio de Janeiro", Ctime: 1, Utime: 2},
		},
		{
			name:     "不存在",
			server:   s.public,
			id:       9999,
			wantCode: 523002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := post[web.CompanyVO](t, tc.server, "/companies/detail", web.IdReq{Id: tc.id})
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantVO, res.Data)
		})
	}
}

func (s *CompanyTestSuite) Test_List() {
	t := s.T()
	s.create(t,
		comdao.Company{Id: 101, Name: "Alpha", State: "SP", City: "Campinas", Ctime: 1, Utime: 1},
		comdao.Company{Id: 102, Name: "Beta", State: "MG", City: "Belo Horizonte", Ctime: 1, Utime: 3},
		comdao.Company{Id: 103, Name: "Gamma", State: "RS", City: "Porto Alegre", Ctime: 1, Utime: 2},
	)
	for _, server := range []*egin.Component{s.admin, s.public} {
		res := post[web.ListCompanyResp](t, server, "/companies/list", web.Page{Offset: 0, Limit: 2})
		require.Equal(t, 0, res.Code)
		assert.Equal(t, int64(3), res.Data.Total)
		// 最近更新的在前面
		require.Len(t, res.Data.List, 2)
		assert.Equal(t, int64(102), res.Data.List[0].ID)
		assert.Equal(t, "Belo Horizonte", res.Data.List[0].City)
		assert.Equal(t, int64(103), res.Data.List[1].ID)
		assert.Equal(t, "RS", res.Data.List[1].State)
	}
}

func (s *CompanyTestSuite) Test_Delete() {
	t := s.T()
	s.create(t, comdao.Company{Id: 30, Name: "ToDelete", Ctime: 1, Utime: 1})
	res := post[string](t, s.admin, "/companies/delete", web.IdReq{Id: 30})
	require.Equal(t, 0, res.Code)
	_, err := s.dao.FindById(context.Background(), 30)
	assert.ErrorIs(t, err, comdao.ErrRecordNotFound)

	// 公开接口没有删除
	req, err := http.NewRequest(http.MethodPost, "/companies/delete", iox.NewJSONReader(web.IdReq{Id: 30}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[string]()
	s.public.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// 职位列表靠 GetByIds 拿公司名称
func (s *CompanyTestSuite) Test_GetByIds() {
	s.create(s.T(),
		comdao.Company{Id: 201, Name: "Tech Solutions", City: "São Paulo", Ctime: 1, Utime: 1},
		comdao.Company{Id: 202, Name: "Data Corp", City: "Recife", Ctime: 1, Utime: 1},
	)
	testCases := []struct {
		name      string
		ids       []int64
		wantNames map[int64]string
	}{
		{
			name:      "全部存在",
			ids:       []int64{201, 202},
			wantNames: map[int64]string{201: "Tech Solutions", 202: "Data Corp"},
		},
		{
			name:      "部分不存在",
			ids:       []int64{201, 999},
			wantNames: map[int64]string{201: "Tech Solutions"},
		},
		{
			name:      "空列表",
			ids:       []int64{},
			wantNames: map[int64]string{},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			companies, err := s.svc.GetByIds(context.Background(), tc.ids)
			require.NoError(t, err)
			names := make(map[int64]string, len(companies))
			for id, c := range companies {
				names[id] = c.Name
			}
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestCompany(t *testing.T) {
	suite.Run(t, new(CompanyTestSuite))
}
