//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/integration/startup"
	appdao "github.com/ecodeclub/xpecial/internal/application/internal/repository/dao"
	"github.com/ecodeclub/xpecial/internal/application/internal/web"
	"github.com/ecodeclub/xpecial/internal/candidate"
	"github.com/ecodeclub/xpecial/internal/job"
	"github.com/ecodeclub/xpecial/internal/pkg/middleware"
	"github.com/ecodeclub/xpecial/internal/test"
	testioc "github.com/ecodeclub/xpecial/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	uid       = 1001
	companyID = 11
	// 别的公司
	otherCompanyID = 12

	headerUid     = "X-Test-Uid"
	headerRole    = "X-Test-Role"
	headerCompany = "X-Test-Company"
)

type ApplicationTestSuite struct {
	suite.Suite
	server       *egin.Component
	db           *egorm.Component
	rdb          redis.Cmdable
	jobSvc       job.Service
	candidateSvc candidate.Service
}

func (s *ApplicationTestSuite) SetupSuite() {
	modules, err := startup.InitModules()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	// 通过请求头模拟不同角色的登录态
	server.Use(func(ctx *gin.Context) {
		id, _ := strconv.ParseInt(ctx.GetHeader(headerUid), 10, 64)
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: id,
			Data: map[string]string{
				"role":      ctx.GetHeader(headerRole),
				"companyId": ctx.GetHeader(headerCompany),
			},
		}))
	})
	modules.App.AdminHdl.PrivateRoutes(server.Engine)
	cg := server.Group("/company", middleware.NewCheckRoleBuilder(nil).Build(middleware.RoleCompany))
	modules.App.CompanyHdl.CompanyRoutes(cg)
	pg := server.Group("/candidate", middleware.NewCheckRoleBuilder(nil).Build(middleware.RoleCandidate))
	modules.App.CandidateHdl.CandidateRoutes(pg)

	// 投递计数和快照同步都依赖消费者
	modules.App.CandidateConsumer.Start(context.Background())
	modules.Job.Consumer.Start(context.Background())

	s.server = server
	s.db = testioc.InitDB()
	s.rdb = testioc.InitRedis()
	s.jobSvc = modules.Job.Svc
	s.candidateSvc = modules.Candidate.Svc
}

func (s *ApplicationTestSuite) TearDownTest() {
	for _, table := range []string{"applications", "jobs", "candidates"} {
		require.NoError(s.T(), s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	keys, err := s.rdb.Keys(ctx, "xpecial:application:*").Result()
	require.NoError(s.T(), err)
	if len(keys) > 0 {
		require.NoError(s.T(), s.rdb.Del(ctx, keys...).Err())
	}
}

func (s *ApplicationTestSuite) Test_Apply() {
	t := s.T()
	ctx := context.Background()
	openJob := s.saveJob(companyID, job.StatusOpen)
	closedJob := s.saveJob(companyID, job.StatusClosed)
	s.saveProfile(uid, "Maria Silva", "maria@example.com")

	testCases := []struct {
		name     string
		uid      int64
		req      web.ApplyReq
		wantCode int
		after    func(t *testing.T, id int64)
	}{
		{
			name: "投递成功",
			uid:  uid,
			req:  web.ApplyReq{JobID: openJob, Message: "你好", ContactConsent: true},
			after: func(t *testing.T, id int64) {
				var app appdao.Application
				require.NoError(t, s.db.WithContext(ctx).Where("id = ?", id).First(&app).Error)
				assert.Equal(t, int64(companyID), app.CompanyID)
				assert.Equal(t, "Maria Silva", app.CandidateName)
				assert.Equal(t, "maria@example.com", app.CandidateEmail)
				assert.Equal(t, domain.StatusApplied.ToUint8(), app.Status)
				assert.True(t, app.ContactConsent)
				assert.NotZero(t, app.Ctime)
				// 消费者异步加计数
				require.Eventually(t, func() bool {
					jb, err := s.jobSvc.Detail(ctx, openJob)
					return err == nil && jb.ApplicationsCount == 1
				}, time.Second*5, time.Millisecond*100)
			},
		},
		{
			name:     "重复投递",
			uid:      uid,
			req:      web.ApplyReq{JobID: openJob},
			wantCode: 520005,
		},
		{
			name:     "职位已关闭",
			uid:      uid,
			req:      web.ApplyReq{JobID: closedJob},
			wantCode: 520006,
		},
		{
			name:     "职位不存在",
			uid:      uid,
			req:      web.ApplyReq{JobID: closedJob + 100},
			wantCode: 520007,
		},
		{
			name:     "没有个人资料",
			uid:      uid + 1,
			req:      web.ApplyReq{JobID: openJob},
			wantCode: 520009,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := s.newRequest(t, http.MethodPost, "/candidate/applications/apply", tc.req)
			asCandidate(req, tc.uid)
			res := doRequest[int64](s.server, req)
			require.Equal(t, tc.wantCode, res.Code)
			if tc.after != nil {
				require.NotZero(t, res.Data)
				tc.after(t, res.Data)
			}
		})
	}
}

func (s *ApplicationTestSuite) Test_List() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	s.insertApps(
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 1, CandidateName: "Maria Silva", CandidateEmail: "maria@example.com", Status: 1, Ctime: base},
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 2, CandidateName: "John Doe", CandidateEmail: "john@example.com", Status: 1, Ctime: base + 2},
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 3, CandidateName: "Ana Souza", CandidateEmail: "ana@example.com", Status: 2, Ctime: base + 1},
		appdao.Application{JobID: jid, CompanyID: otherCompanyID, CandidateID: 4, CandidateName: "Maria Other", CandidateEmail: "other@example.com", Status: 1, Ctime: base + 3},
	)

	testCases := []struct {
		name      string
		query     string
		wantCode  int
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "默认按照投递时间倒序",
			query:     "",
			wantNames: []string{"John Doe", "Ana Souza", "Maria Silva"},
			wantTotal: 3,
		},
		{
			name:      "按照状态过滤",
			query:     "status=APPLIED",
			wantNames: []string{"John Doe", "Maria Silva"},
			wantTotal: 2,
		},
		{
			name:      "ALL 等于不过滤",
			query:     "status=ALL",
			wantNames: []string{"John Doe", "Ana Souza", "Maria Silva"},
			wantTotal: 3,
		},
		{
			name:      "按照姓名搜索",
			query:     "search=maria",
			wantNames: []string{"Maria Silva"},
			wantTotal: 1,
		},
		{
			name:      "按照姓名升序",
			query:     "sortBy=name&sortOrder=asc",
			wantNames: []string{"Ana Souza", "John Doe", "Maria Silva"},
			wantTotal: 3,
		},
		{
			name:      "分页",
			query:     "limit=2&page=2",
			wantNames: []string{"Maria Silva"},
			wantTotal: 3,
		},
		{
			name:     "非法状态",
			query:    "status=bogus",
			wantCode: 520002,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := s.newRequest(t, http.MethodGet, "/company/applications?"+tc.query, nil)
			asCompany(req, companyID)
			res := doRequest[web.ApplicationPage](s.server, req)
			require.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode != 0 {
				return
			}
			assert.Equal(t, tc.wantTotal, res.Data.Total)
			assert.Equal(t, tc.wantNames, names(res.Data.Items))
			for _, item := range res.Data.Items {
				assert.Equal(t, int64(companyID), item.CompanyID)
			}
		})
	}
}

func (s *ApplicationTestSuite) Test_SetStatus() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	ids := s.insertApps(
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 1, CandidateName: "Maria Silva", Status: 4, Ctime: 1},
		appdao.Application{JobID: jid, CompanyID: otherCompanyID, CandidateID: 2, CandidateName: "John Doe", Status: 1, Ctime: 2},
	)
	// 先把列表读进缓存
	listReq := s.newRequest(t, http.MethodGet, "/company/applications?status=INTERVIEW", nil)
	asCompany(listReq, companyID)
	before := doRequest[web.ApplicationPage](s.server, listReq)
	require.Equal(t, int64(0), before.Data.Total)

	testCases := []struct {
		name     string
		id       int64
		status   string
		wantCode int
	}{
		{
			name:   "HIRED 回退到 INTERVIEW",
			id:     ids[0],
			status: "INTERVIEW",
		},
		{
			name:   "状态没变",
			id:     ids[0],
			status: "INTERVIEW",
		},
		{
			name:     "非法状态",
			id:       ids[0],
			status:   "ARCHIVED",
			wantCode: 520002,
		},
		{
			name:     "不属于当前公司",
			id:       ids[1],
			status:   "SCREENING",
			wantCode: 520004,
		},
		{
			name:     "投递不存在",
			id:       ids[1] + 100,
			status:   "SCREENING",
			wantCode: 520003,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := s.newRequest(t, http.MethodPatch,
				fmt.Sprintf("/company/applications/%d/status", tc.id), web.StatusReq{Status: tc.status})
			asCompany(req, companyID)
			res := doRequest[any](s.server, req)
			require.Equal(t, tc.wantCode, res.Code)
		})
	}

	// 缓存已经失效
	listReq = s.newRequest(t, http.MethodGet, "/company/applications?status=INTERVIEW", nil)
	asCompany(listReq, companyID)
	after := doRequest[web.ApplicationPage](s.server, listReq)
	require.Equal(t, int64(1), after.Data.Total)
	assert.Equal(t, "INTERVIEW", after.Data.Items[0].Status)
	assert.Equal(t, "Entrevista", after.Data.Items[0].StatusLabel)

	var other appdao.Application
	require.NoError(t, s.db.Where("id = ?", ids[1]).First(&other).Error)
	assert.Equal(t, uint8(1), other.Status)
}

func (s *ApplicationTestSuite) Test_BulkSetStatus() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	apps := make([]appdao.Application, 0, 6)
	for i := 1; i <= 5; i++ {
		apps = append(apps, appdao.Application{JobID: jid, CompanyID: companyID,
			CandidateID: int64(i), CandidateName: fmt.Sprintf("candidate %d", i), Status: 1, Ctime: int64(i)})
	}
	apps = append(apps, appdao.Application{JobID: jid, CompanyID: otherCompanyID,
		CandidateID: 6, CandidateName: "other", Status: 1, Ctime: 6})
	ids := s.insertApps(apps...)

	testCases := []struct {
		name          string
		req           web.BulkStatusReq
		wantCode      int
		wantSucceeded int
		wantFailed    int
		after         func(t *testing.T, res web.BulkResult)
	}{
		{
			name:          "全部成功",
			req:           web.BulkStatusReq{IDs: ids[:2], Status: "REJECTED"},
			wantSucceeded: 2,
			after: func(t *testing.T, res web.BulkResult) {
				assert.NotEmpty(t, res.BatchID)
				assert.Equal(t, "REJECTED", res.Status)
				var cnt int64
				require.NoError(t, s.db.Model(&appdao.Application{}).
					Where("company_id = ? AND status = ?", companyID, 5).Count(&cnt).Error)
				assert.Equal(t, int64(2), cnt)
			},
		},
		{
			name:          "部分失败",
			req:           web.BulkStatusReq{IDs: []int64{ids[2], ids[5], ids[5] + 100}, Status: "SCREENING"},
			wantSucceeded: 1,
			wantFailed:    2,
			after: func(t *testing.T, res web.BulkResult) {
				require.Len(t, res.Items, 3)
				assert.True(t, res.Items[0].OK)
				assert.False(t, res.Items[1].OK)
				assert.NotEmpty(t, res.Items[1].Reason)
				assert.False(t, res.Items[2].OK)
				assert.NotEmpty(t, res.Items[2].Reason)
			},
		},
		{
			name:          "重复的 ID 只处理一次",
			req:           web.BulkStatusReq{IDs: []int64{ids[3], ids[3], ids[4]}, Status: "INTERVIEW"},
			wantSucceeded: 2,
		},
		{
			name:     "没有选中",
			req:      web.BulkStatusReq{Status: "INTERVIEW"},
			wantCode: 520008,
		},
		{
			name:     "非法状态",
			req:      web.BulkStatusReq{IDs: ids[:1], Status: "unknown"},
			wantCode: 520002,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := s.newRequest(t, http.MethodPost, "/company/applications/bulk-status", tc.req)
			asCompany(req, companyID)
			res := doRequest[web.BulkResult](s.server, req)
			require.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode != 0 {
				return
			}
			assert.Equal(t, tc.wantSucceeded, res.Data.Succeeded)
			assert.Equal(t, tc.wantFailed, res.Data.Failed)
			if tc.after != nil {
				tc.after(t, res.Data)
			}
		})
	}
}

func (s *ApplicationTestSuite) Test_Stats() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	s.insertApps(
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 1, Status: 1, Ctime: 1},
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 2, Status: 1, Ctime: 2},
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 3, Status: 4, Ctime: 3},
		appdao.Application{JobID: jid, CompanyID: otherCompanyID, CandidateID: 4, Status: 5, Ctime: 4},
	)
	req := s.newRequest(t, http.MethodGet, "/company/applications/stats", nil)
	asCompany(req, companyID)
	res := doRequest[[]web.StatusCount](s.server, req)
	require.Equal(t, 0, res.Code)
	got := make(map[string]int64, len(res.Data))
	for _, cnt := range res.Data {
		got[cnt.Status] = cnt.Count
	}
	assert.Equal(t, map[string]int64{
		"APPLIED":   2,
		"SCREENING": 0,
		"INTERVIEW": 0,
		"HIRED":     1,
		"REJECTED":  0,
	}, got)
}

func (s *ApplicationTestSuite) Test_JobDetail() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	otherJid := s.saveJob(otherCompanyID, job.StatusOpen)
	s.insertApps(
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 1, CandidateName: "Maria Silva", Status: 1, Ctime: 1},
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 2, CandidateName: "John Doe", Status: 3, Ctime: 2},
		appdao.Application{JobID: otherJid, CompanyID: otherCompanyID, CandidateID: 3, CandidateName: "Ana Souza", Status: 1, Ctime: 3},
	)

	t.Run("职位详情", func(t *testing.T) {
		req := s.newRequest(t, http.MethodGet, fmt.Sprintf("/company/jobs/%d", jid), nil)
		asCompany(req, companyID)
		res := doRequest[web.JobDetail](s.server, req)
		require.Equal(t, 0, res.Code)
		assert.Equal(t, jid, res.Data.Job.ID)
		assert.Equal(t, "OPEN", res.Data.Job.Status)
		assert.ElementsMatch(t, []string{"Maria Silva", "John Doe"}, names(res.Data.Applications))
	})

	t.Run("别的公司的职位", func(t *testing.T) {
		req := s.newRequest(t, http.MethodGet, fmt.Sprintf("/company/jobs/%d", otherJid), nil)
		asCompany(req, companyID)
		res := doRequest[web.JobDetail](s.server, req)
		assert.Equal(t, 520004, res.Code)
	})

	t.Run("职位下的投递列表", func(t *testing.T) {
		req := s.newRequest(t, http.MethodGet,
			fmt.Sprintf("/company/jobs/%d/applications?status=INTERVIEW", jid), nil)
		asCompany(req, companyID)
		res := doRequest[web.ApplicationPage](s.server, req)
		require.Equal(t, 0, res.Code)
		assert.Equal(t, int64(1), res.Data.Total)
		assert.Equal(t, []string{"John Doe"}, names(res.Data.Items))
	})
}

func (s *ApplicationTestSuite) Test_CandidateList() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	otherJid := s.saveJob(otherCompanyID, job.StatusOpen)
	s.insertApps(
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: uid, Status: 1, Ctime: 1},
		appdao.Application{JobID: otherJid, CompanyID: otherCompanyID, CandidateID: uid, Status: 2, Ctime: 2},
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: uid + 1, Status: 1, Ctime: 3},
	)
	req := s.newRequest(t, http.MethodGet, "/candidate/applications", nil)
	asCandidate(req, uid)
	res := doRequest[[]web.Application](s.server, req)
	require.Equal(t, 0, res.Code)
	require.Len(t, res.Data, 2)
	for _, app := range res.Data {
		assert.Equal(t, int64(uid), app.Candidate.ID)
	}
}

func (s *ApplicationTestSuite) Test_CandidateSnapshotSync() {
	t := s.T()
	ctx := context.Background()
	jid := s.saveJob(companyID, job.StatusOpen)
	s.saveProfile(uid, "Maria Silva", "maria@example.com")
	req := s.newRequest(t, http.MethodPost, "/candidate/applications/apply", web.ApplyReq{JobID: jid})
	asCandidate(req, uid)
	res := doRequest[int64](s.server, req)
	require.Equal(t, 0, res.Code)

	s.saveProfile(uid, "Maria Costa", "maria.costa@example.com")
	require.Eventually(t, func() bool {
		var app appdao.Application
		err := s.db.WithContext(ctx).Where("id = ?", res.Data).First(&app).Error
		return err == nil && app.CandidateName == "Maria Costa" &&
			app.CandidateEmail == "maria.costa@example.com"
	}, time.Second*5, time.Millisecond*100)
}

func (s *ApplicationTestSuite) Test_AdminList() {
	t := s.T()
	jid := s.saveJob(companyID, job.StatusOpen)
	otherJid := s.saveJob(otherCompanyID, job.StatusOpen)
	s.insertApps(
		appdao.Application{JobID: jid, CompanyID: companyID, CandidateID: 1, Status: 1, Ctime: 1},
		appdao.Application{JobID: otherJid, CompanyID: otherCompanyID, CandidateID: 2, Status: 1, Ctime: 2},
	)

	t.Run("管理员看全部公司", func(t *testing.T) {
		req := s.newRequest(t, http.MethodGet, "/admin/applications", nil)
		req.Header.Set(headerRole, middleware.RoleAdmin)
		res := doRequest[web.ApplicationPage](s.server, req)
		require.Equal(t, 0, res.Code)
		assert.Equal(t, int64(2), res.Data.Total)
	})

	t.Run("公司账号不能访问候选人接口", func(t *testing.T) {
		req := s.newRequest(t, http.MethodGet, "/candidate/applications", nil)
		asCompany(req, companyID)
		resp := test.NewJSONResponseRecorder[any]()
		s.server.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})
}

func (s *ApplicationTestSuite) saveJob(cid int64, status job.Status) int64 {
	id, err := s.jobSvc.Save(context.Background(), job.Job{
		CompanyID: cid,
		Title:     "Desenvolvedor Go",
		State:     "SP",
		City:      "São Paulo",
		Status:    status,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *ApplicationTestSuite) saveProfile(id int64, name, email string) {
	err := s.candidateSvc.Save(context.Background(), candidate.Candidate{
		ID:    id,
		Name:  name,
		Email: email,
	})
	require.NoError(s.T(), err)
}

func (s *ApplicationTestSuite) insertApps(apps ...appdao.Application) []int64 {
	require.NoError(s.T(), s.db.Create(&apps).Error)
	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	return ids
}

func (s *ApplicationTestSuite) newRequest(t *testing.T, method, path string, body any) *http.Request {
	if body == nil {
		req, err := http.NewRequest(method, path, nil)
		require.NoError(t, err)
		return req
	}
	req, err := http.NewRequest(method, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func asCompany(req *http.Request, cid int64) {
	req.Header.Set(headerUid, "1")
	req.Header.Set(headerRole, middleware.RoleCompany)
	req.Header.Set(headerCompany, strconv.FormatInt(cid, 10))
}

func asCandidate(req *http.Request, id int64) {
	req.Header.Set(headerUid, strconv.FormatInt(id, 10))
	req.Header.Set(headerRole, middleware.RoleCandidate)
}

func doRequest[T any](server http.Handler, req *http.Request) test.Result[T] {
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder.MustScan()
}

func names(apps []web.Application) []string {
	res := make([]string, 0, len(apps))
	for _, app := range apps {
		res = append(res, app.Candidate.Name)
	}
	return res
}

func TestApplicationModule(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}
