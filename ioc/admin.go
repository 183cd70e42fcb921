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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/application"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/pkg/middleware"
	"github.com/gotomicro/ego/server/egin"
)

// AdminServer 管理后台单独一个端口，只有管理员角色能访问
type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	companyHdl *company.AdminHandler,
	appHdl *application.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware("admin.xpecial.com"))
	res.GET("/health", health)

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleBuilder(sp).Build(middleware.RoleAdmin))
	companyHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	return res
}
