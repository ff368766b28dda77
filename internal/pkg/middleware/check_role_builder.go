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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const RoleClaimKey = "role"

var forbiddenResult = ginx.Result{
	Code: 416301,
	Msg:  "没有权限",
}

// CheckRoleMiddlewareBuilder 校验 session 里的角色，管理后台要求 admin
type CheckRoleMiddlewareBuilder struct {
	role   string
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(role string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		role:   role,
		logger: elog.DefaultLogger.With(elog.FieldComponent("middleware.role")),
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		if claims.Get(RoleClaimKey).StringOrDefault("") != c.role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, forbiddenResult)
			c.logger.Warn("非法访问",
				elog.Int64("uid", claims.Uid),
				elog.String("path", ctx.Request.URL.Path))
			return
		}
	}
}
