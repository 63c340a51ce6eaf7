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
	"github.com/dotting-labs/dotting/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc         service.Service
	snGenerator *sequencenumber.Generator
}

func NewHandler(svc service.Service, snGenerator *sequencenumber.Generator) *Handler {
	return &Handler{svc: svc, snGenerator: snGenerator}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/compilation")
	g.POST("/save", ginx.BS[SaveCompilationReq](h.Save))
	g.POST("/detail", ginx.BS[CompilationIDReq](h.Detail))
	g.POST("/submit", ginx.BS[CompilationIDReq](h.Submit))
	g.POST("/confirm-pdf", ginx.BS[CompilationIDReq](h.ConfirmPDF))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveCompilationReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	c := domain.Compilation{
		ID:        req.ID,
		SessionID: req.SessionID,
		UID:       uid,
		Title:     req.Title,
		Content:   req.Content,
	}
	if c.ID == 0 {
		sn, err := h.snGenerator.Generate(uid)
		if err != nil {
			return systemErrorResult, err
		}
		c.SN = sn
	}
	id, err := h.svc.Save(ctx, c)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: Compilation{ID: id, SN: c.SN}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req CompilationIDReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.FindByID(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	if c.UID != sess.Claims().Uid {
		return forbiddenResult, nil
	}
	return ginx.Result{Data: toCompilationVO(c)}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req CompilationIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Submit(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ConfirmPDF 幂等接口, 重复确认返回首次确认的结果
func (h *Handler) ConfirmPDF(ctx *ginx.Context, req CompilationIDReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.ConfirmPDF(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: toCompilationVO(c)}, nil
}
