package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/job/internal/domain"
	"github.com/ecodeclub/xpecial/internal/job/internal/errs"
	"github.com/ecodeclub/xpecial/internal/job/internal/service"
	"github.com/ecodeclub/xpecial/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxLimit = 100

type Handler struct {
	svc        service.Service
	companySvc company.Service
	logger     *elog.Component
}

func NewHandler(svc service.Service, companySvc company.Service) *Handler {
	return &Handler{
		svc:        svc,
		companySvc: companySvc,
		logger:     elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/jobs", ginx.B[Page](h.ListOpen))
}

// CompanyRoutes 挂在公司角色的分组下面
func (h *Handler) CompanyRoutes(g *gin.RouterGroup) {
	g.POST("/jobs/save", ginx.B[SaveJobReq](h.Save))
	g.GET("/jobs", ginx.B[Page](h.List))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveJobReq) (ginx.Result, error) {
	cid, _ := ectx.CompanyIDFromCtx(ctx.Request.Context())
	job := req.Job.toDomain()
	job.CompanyID = cid
	id, err := h.svc.Save(ctx, job)
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrJobNotFound):
		return ginx.Result{Code: errs.NotFound.Code, Msg: errs.NotFound.Msg}, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return ginx.Result{Code: errs.PermissionDenied.Code, Msg: errs.PermissionDenied.Msg}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	cid, _ := ectx.CompanyIDFromCtx(ctx.Request.Context())
	jobs, total, err := h.svc.ListByCompany(ctx, cid, req.Offset, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: JobList{Total: total, List: h.toVOs(jobs)}}, nil
}

func (h *Handler) ListOpen(ctx *ginx.Context, req Page) (ginx.Result, error) {
	jobs, err := h.svc.ListOpen(ctx, req.Offset, h.limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	cids := slice.Map(jobs, func(idx int, src domain.Job) int64 {
		return src.CompanyID
	})
	companies, err := h.companySvc.GetByIds(ctx, cids)
	// 公司名查不到也不影响职位列表
	if err != nil {
		h.logger.Error("查询职位的公司信息失败",
			elog.Any("cids", cids),
			elog.FieldErr(err))
	}
	list := slice.Map(jobs, func(idx int, src domain.Job) Job {
		vo := newJob(src)
		vo.CompanyName = companies[src.CompanyID].Name
		return vo
	})
	return ginx.Result{Data: JobList{List: list}}, nil
}

func (h *Handler) limit(l int) int {
	if l <= 0 || l > maxLimit {
		return maxLimit
	}
	return l
}

func (h *Handler) toVOs(jobs []domain.Job) []Job {
	return slice.Map(jobs, func(idx int, src domain.Job) Job {
		return newJob(src)
	})
}
