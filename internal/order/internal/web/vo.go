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
	"github.com/dotting-labs/dotting/internal/order/internal/domain"
)

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	RequestID string `json:"requestID"` // 请求去重,防止订单重复提交
	SessionSN string `json:"sessionSN"` // 访谈会话序列号
	Package   string `json:"package"`   // 套餐 digital/hardcover/premium
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
	Amount  int64  `json:"amount"`
}

// RetrieveOrderDetailReq 获取订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

// CancelOrderReq 取消订单请求
type CancelOrderReq struct {
	OrderSN string `json:"sn"`
	Reason  string `json:"reason"`
}

// RetryOrderReq 过期订单重新下单请求
type RetryOrderReq struct {
	OrderSN string `json:"sn"`
}

// TransitionOrderReq 管理端状态流转请求
type TransitionOrderReq struct {
	OrderSN         string `json:"sn"`
	To              string `json:"to"`
	Reason          string `json:"reason,omitempty"`
	ShippingCarrier string `json:"shippingCarrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	RefundAmount    int64  `json:"refundAmount,omitempty"`
	RefundReason    string `json:"refundReason,omitempty"`
	AdminNote       string `json:"adminNote,omitempty"`
}

type ListStatusLogsReq struct {
	OrderSN string `json:"sn"`
}

type ListStatusLogsResp struct {
	Logs []StatusLog `json:"logs"`
}

type Order struct {
	SN              string `json:"sn"`
	SessionID       int64  `json:"sessionID"`
	Package         string `json:"package"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
	IsActive        bool   `json:"isActive"`
	PaidAt          int64  `json:"paidAt,omitempty"`
	ShippedAt       int64  `json:"shippedAt,omitempty"`
	DeliveredAt     int64  `json:"deliveredAt,omitempty"`
	CompletedAt     int64  `json:"completedAt,omitempty"`
	CancelledAt     int64  `json:"cancelledAt,omitempty"`
	RefundedAt      int64  `json:"refundedAt,omitempty"`
	ShippingCarrier string `json:"shippingCarrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	CancelReason    string `json:"cancelReason,omitempty"`
	RefundAmount    int64  `json:"refundAmount,omitempty"`
	RefundReason    string `json:"refundReason,omitempty"`
	Ctime           int64  `json:"ctime"`
}

type StatusLog struct {
	From      string `json:"from"`
	To        string `json:"to"`
	ActorID   int64  `json:"actorID"`
	ActorRole string `json:"actorRole"`
	Reason    string `json:"reason,omitempty"`
	Metadata  string `json:"metadata,omitempty"`
	Ctime     int64  `json:"ctime"`
}

func toOrderVO(o domain.Order) Order {
	return Order{
		SN:              o.SN,
		SessionID:       o.SessionID,
		Package:         string(o.Package),
		Amount:          o.Amount,
		Status:          o.Status.String(),
		IsActive:        o.IsActive,
		PaidAt:          o.PaidAt,
		ShippedAt:       o.ShippedAt,
		DeliveredAt:     o.DeliveredAt,
		CompletedAt:     o.CompletedAt,
		CancelledAt:     o.CancelledAt,
		RefundedAt:      o.RefundedAt,
		ShippingCarrier: o.ShippingCarrier,
		TrackingNumber:  o.TrackingNumber,
		CancelReason:    o.CancelReason,
		RefundAmount:    o.RefundAmount,
		RefundReason:    o.RefundReason,
		Ctime:           o.Ctime,
	}
}

func toStatusLogVO(l domain.StatusLog) StatusLog {
	return StatusLog{
		From:      l.FromStatus.String(),
		To:        l.ToStatus.String(),
		ActorID:   l.ActorID,
		ActorRole: l.ActorRole,
		Reason:    l.Reason,
		Metadata:  l.Metadata,
		Ctime:     l.Ctime,
	}
}
