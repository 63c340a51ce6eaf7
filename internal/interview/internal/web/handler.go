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
	"github.com/dotting-labs/dotting/internal/interview/internal/domain"
	"github.com/dotting-labs/dotting/internal/interview/internal/service"
	"github.com/dotting-labs/dotting/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ekit/slice"
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
	g := server.Group("/interview/session")
	g.POST("/start", ginx.BS[StartSessionReq](h.StartSession))
	g.POST("/list", ginx.BS[ListSessionsReq](h.ListSessions))
	g.POST("/detail", ginx.BS[SessionIDReq](h.SessionDetail))
	g.POST("/complete", ginx.BS[SessionIDReq](h.CompleteSession))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) StartSession(ctx *ginx.Context, req StartSessionReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	sn, err := h.snGenerator.Generate(uid)
	if err != nil {
		return systemErrorResult, err
	}
	id, err := h.svc.Start(ctx, domain.Session{
		SN:               sn,
		UID:              uid,
		SubjectName:      req.SubjectName,
		SubjectBirthYear: req.SubjectBirthYear,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Session{ID: id, SN: sn}}, nil
}

func (h *Handler) ListSessions(ctx *ginx.Context, req ListSessionsReq, sess session.Session) (ginx.Result, error) {
	total, ss, err := h.svc.List(ctx, req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListSessionsResp{
			Total: total,
			Sessions: slice.Map(ss, func(idx int, src domain.Session) Session {
				return toSessionVO(src)
			}),
		},
	}, nil
}

func (h *Handler) SessionDetail(ctx *ginx.Context, req SessionIDReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.FindByID(ctx, req.ID)
	if err != nil {
		return errResult(err), err
	}
	if s.UID != sess.Claims().Uid {
		return forbiddenResult, nil
	}
	return ginx.Result{Data: toSessionVO(s)}, nil
}

func (h *Handler) CompleteSession(ctx *ginx.Context, req SessionIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Complete(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}
