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

package web

import (
	"strings"

	"github.com/dotting-labs/dotting/internal/user/internal/domain"
	"github.com/dotting-labs/dotting/internal/user/internal/errs"
	"github.com/dotting-labs/dotting/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{userSvc: userSvc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

// Login 登录即注册。角色写进 jwt 声明, admin 服务的中间件靠它放行
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") {
		return ginx.Result{Code: errs.InvalidEmail.Code, Msg: errs.InvalidEmail.Msg}, nil
	}
	u, err := h.userSvc.FindOrCreateByEmail(ctx, email)
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.ID).
		SetJwtData(map[string]string{
			"role": u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       u.ID,
			SN:       u.SN,
			Nickname: u.Nickname,
			Email:    u.Email,
			Role:     u.Role.String(),
		},
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{
		Data: Profile{
			Nickname: u.Nickname,
			Email:    u.Email,
			Role:     u.Role.String(),
		},
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		ID:       uid,
		Nickname: req.Nickname,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
