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

package domain

type Status string

func (s Status) String() string {
	return string(s)
}

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusInProduction   Status = "in_production"
	StatusReadyToShip    Status = "ready_to_ship"
	StatusShipped        Status = "shipped"
	StatusDelivered      Status = "delivered"
	StatusCompleted      Status = "completed"
	StatusRefunded       Status = "refunded"
	StatusCancelled      Status = "cancelled"
	StatusExpired        Status = "expired"
)

// transitions 订单状态流转表。expired -> pending_payment 是唯一的回边，允许用户重新下单支付
var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusPaid, StatusCancelled, StatusExpired},
	StatusPaid:           {StatusInProduction, StatusRefunded},
	StatusInProduction:   {StatusReadyToShip, StatusRefunded},
	StatusReadyToShip:    {StatusShipped},
	StatusShipped:        {StatusDelivered},
	StatusDelivered:      {StatusCompleted},
	StatusCompleted:      {},
	StatusRefunded:       {},
	StatusCancelled:      {},
	StatusExpired:        {StatusPendingPayment},
}

// IsValid 状态是封闭枚举，未知状态一律拒绝
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal 终态没有任何出边
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo 单步流转校验，不支持跨状态跳转
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := transitions[s]
	if !ok {
		return false
	}
	for _, n := range next {
		if n == target {
			return true
		}
	}
	return false
}

type Package string

const (
	PackageDigital   Package = "digital"
	PackageHardcover Package = "hardcover"
	PackagePremium   Package = "premium"
)

func (p Package) IsValid() bool {
	switch p {
	case PackageDigital, PackageHardcover, PackagePremium:
		return true
	}
	return false
}

// Price 套餐定价, 单位为分, 999表示9.99元
func (p Package) Price() int64 {
	switch p {
	case PackageDigital:
		return 9900
	case PackageHardcover:
		return 29900
	case PackagePremium:
		return 49900
	}
	return 0
}

type Order struct {
	ID        int64
	SN        string
	BuyerID   int64
	SessionID int64
	Package   Package
	// Amount 单位为分, 999表示9.99元
	Amount   int64
	Status   Status
	IsActive bool

	PaidAt      int64
	ShippedAt   int64
	DeliveredAt int64
	CompletedAt int64
	CancelledAt int64
	RefundedAt  int64

	ShippingCarrier string
	TrackingNumber  string
	CancelReason    string
	RefundAmount    int64
	RefundReason    string
	AdminNote       string

	Ctime int64
	Utime int64
}

// TransitionPayload 状态流转时携带的可选字段
type TransitionPayload struct {
	Reason          string
	ShippingCarrier string
	TrackingNumber  string
	RefundAmount    int64
	RefundReason    string
	AdminNote       string
}

// Actor 发起流转的操作者，来自会话
type Actor struct {
	ID   int64
	Role string
}

const (
	RoleMember   = "member"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// StatusLog 状态流转审计日志，只追加不更新
type StatusLog struct {
	ID         int64
	OrderID    int64
	FromStatus Status
	ToStatus   Status
	ActorID    int64
	ActorRole  string
	Reason     string
	Metadata   string
	Ctime      int64
}

// GateDecision 付费闸门的判定结果
type GateDecision struct {
	Allowed bool
	Status  Status
	Message string
}
