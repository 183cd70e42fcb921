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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

// CompanyHandler 公司看板，路由分组上必须挂公司角色的校验
type CompanyHandler struct {
	svc service.Service
}

func NewCompanyHandler(svc service.Service) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) CompanyRoutes(g *gin.RouterGroup) {
	g.GET("/applications", ginx.B[ListReq](h.List))
	g.GET("/applications/stats", ginx.W(h.Stats))
	g.GET("/applications/:id", ginx.W(h.Detail))
	g.PATCH("/applications/:id/status", ginx.B[StatusReq](h.SetStatus))
	g.POST("/applications/bulk-status", ginx.B[BulkStatusReq](h.BulkSetStatus))
	g.GET("/jobs/:id", ginx.W(h.JobDetail))
	g.GET("/jobs/:id/applications", ginx.B[ListReq](h.JobApplications))
}

func (h *CompanyHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	q, err := req.toQuery()
	if err != nil {
		return errResult(err)
	}
	page, err := h.svc.List(ctx, companyID(ctx), q)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: newApplicationPage(page)}, nil
}

func (h *CompanyHandler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	cnts, err := h.svc.CountByStatus(ctx, companyID(ctx))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newStatusCounts(cnts)}, nil
}

func (h *CompanyHandler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return invalidParamResult, nil
	}
	app, err := h.svc.Detail(ctx, companyID(ctx), id)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *CompanyHandler) SetStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	id, err := pathID(ctx)
	if err != nil {
		return invalidParamResult, nil
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return errResult(err)
	}
	err = h.svc.SetStatus(ctx, companyID(ctx), id, status)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *CompanyHandler) BulkSetStatus(ctx *ginx.Context, req BulkStatusReq) (ginx.Result, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return errResult(err)
	}
	res, err := h.svc.BulkSetStatus(ctx, companyID(ctx), req.IDs, status)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: newBulkResult(res)}, nil
}

func (h *CompanyHandler) JobDetail(ctx *ginx.Context) (ginx.Result, error) {
	jid, err := pathID(ctx)
	if err != nil {
		return invalidParamResult, nil
	}
	jb, apps, err := h.svc.JobApplications(ctx, companyID(ctx), jid)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: newJobDetail(jb, apps)}, nil
}

func (h *CompanyHandler) JobApplications(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	jid, err := pathID(ctx)
	if err != nil {
		return invalidParamResult, nil
	}
	q, err := req.toQuery()
	if err != nil {
		return errResult(err)
	}
	page, err := h.svc.ListByJob(ctx, companyID(ctx), jid, q)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: newApplicationPage(page)}, nil
}
