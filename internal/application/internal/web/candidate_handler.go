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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	svc service.Service
}

func NewCandidateHandler(svc service.Service) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

func (h *CandidateHandler) CandidateRoutes(g *gin.RouterGroup) {
	g.POST("/applications/apply", ginx.BS[ApplyReq](h.Apply))
	g.GET("/applications", ginx.S(h.List))
}

func (h *CandidateHandler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Apply(ctx, domain.Application{
		JobID:          req.JobID,
		Candidate:      domain.Candidate{ID: sess.Claims().Uid},
		Message:        req.Message,
		ContactConsent: req.ContactConsent,
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *CandidateHandler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.ListByCandidate(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplications(apps)}, nil
}
