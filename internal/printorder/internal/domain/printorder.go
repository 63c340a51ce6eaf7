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
	StatusPending       Status = "pending"
	StatusPrinting      Status = "printing"
	StatusShipped       Status = "shipped"
	StatusDelivered     Status = "delivered"
	StatusClaimOpened   Status = "claim_opened"
	StatusClaimResolved Status = "claim_resolved"
)

// transitions 印刷单状态流转表。送达后仍可开理赔，理赔关闭即终态
var transitions = map[Status][]Status{
	StatusPending:       {StatusPrinting},
	StatusPrinting:      {StatusShipped},
	StatusShipped:       {StatusDelivered, StatusClaimOpened},
	StatusDelivered:     {StatusClaimOpened},
	StatusClaimOpened:   {StatusClaimResolved},
	StatusClaimResolved: {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

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

type PrintOrder struct {
	ID            int64
	SN            string
	CompilationID int64
	Status        Status

	PrintingAt      int64
	ShippedAt       int64
	DeliveredAt     int64
	ClaimOpenedAt   int64
	ClaimResolvedAt int64

	// TrackingCarrier 承运商可以不填, 运单号发货时必填
	TrackingCarrier string
	TrackingNumber  string
	ClaimReason     string
	ClaimResolution string
	// ProcessedBy 理赔处理人
	ProcessedBy int64

	Ctime int64
	Utime int64
}

// TransitionPayload 状态流转时携带的可选字段
type TransitionPayload struct {
	TrackingCarrier string
	TrackingNumber  string
	ClaimReason     string
	ClaimResolution string
}

// Actor 发起流转的操作者，来自会话
type Actor struct {
	ID   int64
	Role string
}

// StatusLog 状态流转审计日志，只追加不更新
type StatusLog struct {
	ID           int64
	PrintOrderID int64
	FromStatus   Status
	ToStatus     Status
	ActorID      int64
	ActorRole    string
	Reason       string
	Metadata     string
	Ctime        int64
}
