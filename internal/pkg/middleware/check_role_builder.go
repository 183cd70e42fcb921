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

package middleware

import (
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	RoleAdmin     = "admin"
	RoleCompany   = "company"
	RoleCandidate = "candidate"

	claimRole      = "role"
	claimCompanyID = "companyId"
)

// CheckRoleBuilder 校验 session 里面的角色，公司角色还会把公司 ID 放进 context
type CheckRoleBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

// NewCheckRoleBuilder sp 为 nil 的时候在 Build 时使用 session.DefaultProvider
func NewCheckRoleBuilder(sp session.Provider) *CheckRoleBuilder {
	return &CheckRoleBuilder{
		sp:     sp,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleBuilder) Build(role string) gin.HandlerFunc {
	sp := c.sp
	if sp == nil {
		sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		got := claims.Get(claimRole).StringOrDefault("")
		if got != role {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("角色不匹配",
				elog.Int64("uid", claims.Uid),
				elog.String("want", role),
				elog.String("got", got))
			return
		}
		newCtx := ectx.CtxWithRole(ctx.Request.Context(), role)
		if role == RoleCompany {
			cid, err := strconv.ParseInt(claims.Get(claimCompanyID).StringOrDefault(""), 10, 64)
			if err != nil || cid <= 0 {
				gctx.AbortWithStatus(http.StatusForbidden)
				c.logger.Error("公司账号缺少公司 ID", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
				return
			}
			newCtx = ectx.CtxWithCompanyID(newCtx, cid)
		}
		ctx.Request = ctx.Request.WithContext(newCtx)
	}
}
