package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/xpecial/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理后台看全部公司的投递
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/applications")
	g.GET("", ginx.B[ListReq](h.List))
	g.GET("/stats", ginx.W(h.Stats))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	q, err := req.toQuery()
	if err != nil {
		return errResult(err)
	}
	page, err := h.svc.List(ctx, 0, q)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: newApplicationPage(page)}, nil
}

func (h *AdminHandler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	cnts, err := h.svc.CountByStatus(ctx, 0)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newStatusCounts(cnts)}, nil
}
