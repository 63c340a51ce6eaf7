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

package ioc

import (
	"net/http"
	"strings"

	"github.com/dotting-labs/dotting/internal/compilation"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/dotting-labs/dotting/internal/pkg/middleware"
	"github.com/dotting-labs/dotting/internal/printorder"
	"github.com/dotting-labs/dotting/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 运营端服务。状态流转接口全挂在这里,
// 会话角色必须是 operator 或 admin 才能进来
func InitAdminServer(
	orderAdminHdl *order.AdminHandler,
	printOrderAdminHdl *printorder.AdminHandler,
	compilationAdminHdl *compilation.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "dotting.life")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 角色校验
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(
		user.RoleOperator.String(),
		user.RoleAdmin.String()).Build())
	orderAdminHdl.PrivateRoutes(res.Engine)
	printOrderAdminHdl.PrivateRoutes(res.Engine)
	compilationAdminHdl.PrivateRoutes(res.Engine)
	return res
}
