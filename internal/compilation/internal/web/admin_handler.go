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
	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
	"github.com/dotting-labs/dotting/internal/compilation/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/compilation")
	g.POST("/list", ginx.B[ListCompilationsReq](h.List))
	g.POST("/detail", ginx.B[CompilationIDReq](h.Detail))
	g.POST("/approve", ginx.B[CompilationIDReq](h.Approve))
	g.POST("/reject", ginx.B[CompilationIDReq](h.Reject))
	g.POST("/approve-print", ginx.B[CompilationIDReq](h.ApproveForPrint))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCompilationsReq) (ginx.Result, error) {
	total, cs, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCompilationsResp{
			Total: total,
			Compilations: slice.Map(cs, func(idx int, src domain.Compilation) Compilation {
				return toCompilationVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req CompilationIDReq) (ginx.Result, error) {
	c, err := h.svc.FindByID(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: toCompilationVO(c)}, nil
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req CompilationIDReq) (ginx.Result, error) {
	err := h.svc.Approve(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req CompilationIDReq) (ginx.Result, error) {
	err := h.svc.Reject(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ApproveForPrint(ctx *ginx.Context, req CompilationIDReq) (ginx.Result, error) {
	err := h.svc.ApproveForPrint(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}
