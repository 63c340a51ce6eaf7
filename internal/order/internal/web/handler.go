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
	"context"
	"fmt"

	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
	"github.com/dotting-labs/dotting/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc          service.Service
	interviewSvc interview.Service
	snGenerator  *sequencenumber.Generator
	cache        ecache.Cache
}

func NewHandler(svc service.Service, interviewSvc interview.Service,
	snGenerator *sequencenumber.Generator, cache ecache.Cache) *Handler {
	return &Handler{
		svc:          svc,
		interviewSvc: interviewSvc,
		snGenerator:  snGenerator,
		cache:        cache,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
	g.POST("/retry", ginx.BS[RetryOrderReq](h.RetryOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 为访谈会话创建订单, 初始状态为 pending_payment
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	uid := sess.Claims().Uid
	interviewSession, err := h.interviewSvc.FindBySN(ctx.Request.Context(), req.SessionSN)
	if err != nil {
		return systemErrorResult, fmt.Errorf("访谈会话序列号非法: %w", err)
	}
	if interviewSession.UID != uid {
		return forbiddenResult, fmt.Errorf("会话不属于当前用户: uid=%d", uid)
	}

	pkg := domain.Package(req.Package)
	if !pkg.IsValid() {
		return errResult(service.ErrMissingField), fmt.Errorf("套餐非法: %s", req.Package)
	}

	orderSN, err := h.snGenerator.Generate(uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		SN:        orderSN,
		BuyerID:   uid,
		SessionID: interviewSession.ID,
		Package:   pkg,
		Amount:    pkg.Price(),
	})
	if err != nil {
		return errResult(err), fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN: order.SN,
			Amount:  order.Amount,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		return errResult(err), fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
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

// CancelOrder 买家取消未支付的订单
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, uid)
	if err != nil {
		return errResult(err), fmt.Errorf("订单未找到: %w", err)
	}
	_, err = h.svc.Transition(ctx.Request.Context(), order.ID, domain.StatusCancelled,
		domain.TransitionPayload{Reason: req.Reason},
		domain.Actor{ID: uid, Role: domain.RoleMember})
	if err != nil {
		return errResult(err), fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// RetryOrder 过期订单重新回到待支付, 这是状态表中唯一的回边
func (h *Handler) RetryOrder(ctx *ginx.Context, req RetryOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, uid)
	if err != nil {
		return errResult(err), fmt.Errorf("订单未找到: %w", err)
	}
	updated, err := h.svc.Transition(ctx.Request.Context(), order.ID, domain.StatusPendingPayment,
		domain.TransitionPayload{},
		domain.Actor{ID: uid, Role: domain.RoleMember})
	if err != nil {
		return errResult(err), fmt.Errorf("重新下单失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(updated)},
	}, nil
}
