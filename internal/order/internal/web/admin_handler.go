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

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 运营端订单接口, 挂在 admin 服务上, 角色校验由中间件完成
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.Detail))
	g.POST("/transition", ginx.BS[TransitionOrderReq](h.Transition))
	g.POST("/logs", ginx.B[ListStatusLogsReq](h.ListStatusLogs))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errResult(err), fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

// Transition 运营驱动的状态流转, 操作者从会话声明中取
func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errResult(err), fmt.Errorf("订单未找到: %w", err)
	}
	actor := domain.Actor{
		ID:   sess.Claims().Uid,
		Role: sess.Claims().Get("role").StringOrDefault(""),
	}
	updated, err := h.svc.Transition(ctx.Request.Context(), order.ID, domain.Status(req.To),
		domain.TransitionPayload{
			Reason:          req.Reason,
			ShippingCarrier: req.ShippingCarrier,
			TrackingNumber:  req.TrackingNumber,
			RefundAmount:    req.RefundAmount,
			RefundReason:    req.RefundReason,
			AdminNote:       req.AdminNote,
		}, actor)
	if err != nil {
		return errResult(err), fmt.Errorf("订单状态流转失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(updated)},
	}, nil
}

func (h *AdminHandler) ListStatusLogs(ctx *ginx.Context, req ListStatusLogsReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return errResult(err), fmt.Errorf("订单未找到: %w", err)
	}
	logs, err := h.svc.ListStatusLogs(ctx.Request.Context(), order.ID)
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
