// Copyright 2025 dotting-labs
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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 校验会话中的角色声明。
// 管理后台的状态流转接口要求 role 为 operator 或 admin。
type CheckRoleMiddlewareBuilder struct {
	roles  []string
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		role := sess.Claims().Get("role").StringOrDefault("")
		if !slice.Contains(c.roles, role) {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Warn("无权访问管理接口", elog.String("role", role))
			return
		}
	}
}
