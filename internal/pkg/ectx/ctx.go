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

package ectx

import "context"

type ctxKeyType string

var (
	companyIDCtxKey ctxKeyType = "companyId"
	roleCtxKey      ctxKeyType = "role"
)

// CompanyIDFromCtx 管理员或者候选人请求里面没有公司 ID，返回 0
func CompanyIDFromCtx(ctx context.Context) (int64, bool) {
	val := ctx.Value(companyIDCtxKey)
	if val == nil {
		return 0, false
	}
	v, ok := val.(int64)
	return v, ok
}

func CtxWithCompanyID(ctx context.Context, companyID int64) context.Context {
	return context.WithValue(ctx, companyIDCtxKey, companyID)
}

func RoleFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(roleCtxKey)
	if val == nil {
		return "", false
	}
	v, ok := val.(string)
	return v, ok
}

func CtxWithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleCtxKey, role)
}
