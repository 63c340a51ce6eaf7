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
	"fmt"

	"github.com/dotting-labs/dotting/internal/printorder/internal/domain"
	"github.com/dotting-labs/dotting/internal/printorder/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 印刷履约是运营驱动的, 只有运营端接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/print-order")
	g.POST("/create", ginx.B[CreatePrintOrderReq](h.Create))
	g.POST("/list", ginx.B[ListPrintOrdersReq](h.List))
	g.POST("/detail", ginx.B[RetrievePrintOrderDetailReq](h.Detail))
	g.POST("/transition", ginx.BS[TransitionPrintOrderReq](h.Transition))
	g.POST("/logs", ginx.B[ListStatusLogsReq](h.ListStatusLogs))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreatePrintOrderReq) (ginx.Result, error) {
	po, err := h.svc.Create(ctx.Request.Context(), req.CompilationID)
	if err != nil {
		return errResult(err), fmt.Errorf("创建印刷单失败: %w", err)
	}
	return ginx.Result{Data: toPrintOrderVO(po)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListPrintOrdersReq) (ginx.Result, error) {
	total, pos, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListPrintOrdersResp{
			Total: total,
			PrintOrders: slice.Map(pos, func(idx int, src domain.PrintOrder) PrintOrder {
				return toPrintOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrievePrintOrderDetailReq) (ginx.Result, error) {
	po, err := h.svc.FindBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		return errResult(err), fmt.Errorf("印刷单未找到: %w", err)
	}
	return ginx.Result{Data: toPrintOrderVO(po)}, nil
}

// Transition 运营驱动的状态流转, 操作者从会话声明中取
func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionPrintOrderReq, sess session.Session) (ginx.Result, error) {
	po, err := h.svc.FindBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		return errResult(err), fmt.Errorf("印刷单未找到: %w", err)
	}
	actor := domain.Actor{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
	err = h.svc.Transition(ctx.Request.Context(), po.ID, domain.Status(req.To),
		domain.TransitionPayload{
			TrackingCarrier: req.TrackingCarrier,
			TrackingNumber:  req.TrackingNumber,
			ClaimReason:     req.ClaimReason,
			ClaimResolution: req.ClaimResolution,
		}, actor)
	if err != nil {
		return errResult(err), fmt.Errorf("印刷单状态流转失败: %w", err)
	}
	updated, err := h.svc.FindByID(ctx.Request.Context(), po.ID)
	if err != nil {
		return errResult(err), err
	}
	return ginx.Result{Data: toPrintOrderVO(updated)}, nil
}

func (h *AdminHandler) ListStatusLogs(ctx *ginx.Context, req ListStatusLogsReq) (ginx.Result, error) {
	po, err := h.svc.FindBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		return errResult(err), fmt.Errorf("印刷单未找到: %w", err)
	}
	logs, err := h.svc.ListStatusLogs(ctx.Request.Context(), po.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListStatusLogsResp{
			Logs: slice.Map(logs, func(idx int, src domain.StatusLog) StatusLog {
				return toStatusLogVO(src)
			}),
		},
	}, nil
}
