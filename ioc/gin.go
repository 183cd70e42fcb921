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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/application"
	"github.com/ecodeclub/xpecial/internal/candidate"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/job"
	"github.com/ecodeclub/xpecial/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	companyHdl *company.Handler,
	jobHdl *job.Handler,
	candidateHdl *candidate.Handler,
	appCompanyHdl *application.CompanyHandler,
	appCandidateHdl *application.CandidateHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(corsMiddleware("xpecial.com"))
	res.GET("/health", health)
	companyHdl.PublicRoutes(res.Engine)
	jobHdl.PublicRoutes(res.Engine)

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	roles := middleware.NewCheckRoleBuilder(sp)

	cg := res.Group("/company", roles.Build(middleware.RoleCompany))
	jobHdl.CompanyRoutes(cg)
	appCompanyHdl.CompanyRoutes(cg)

	ug := res.Group("/candidate", roles.Build(middleware.RoleCandidate))
	candidateHdl.CandidateRoutes(ug)
	appCandidateHdl.CandidateRoutes(ug)
	return res
}

// corsMiddleware 本地开发放行 localhost
func corsMiddleware(domain string) gin.HandlerFunc {
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.HasSuffix(origin, domain)
		},
	})
}

func health(ctx *gin.Context) {
	ctx.String(http.StatusOK, "ok")
}
