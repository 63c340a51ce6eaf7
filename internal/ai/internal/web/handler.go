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
	"github.com/dotting-labs/dotting/internal/ai/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	dedicationSvc service.DedicationService
}

func NewHandler(dedicationSvc service.DedicationService) *Handler {
	return &Handler{dedicationSvc: dedicationSvc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ai")
	g.POST("/dedication", ginx.BS[SuggestDedicationReq](h.SuggestDedication))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) SuggestDedication(ctx *ginx.Context, req SuggestDedicationReq, sess session.Session) (ginx.Result, error) {
	answer, err := h.dedicationSvc.Suggest(ctx.Request.Context(), sess.Claims().Uid, req.SessionSN, req.Hints)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: SuggestDedicationResp{Dedication: answer}}, nil
}
