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
	"github.com/dotting-labs/dotting/internal/printorder/internal/domain"
)

type CreatePrintOrderReq struct {
	CompilationID int64 `json:"compilationId"`
}

type RetrievePrintOrderDetailReq struct {
	SN string `json:"sn"`
}

type TransitionPrintOrderReq struct {
	SN              string `json:"sn"`
	To              string `json:"to"`
	TrackingCarrier string `json:"trackingCarrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	ClaimReason     string `json:"claimReason,omitempty"`
	ClaimResolution string `json:"claimResolution,omitempty"`
}

type ListPrintOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListPrintOrdersResp struct {
	Total       int64        `json:"total"`
	PrintOrders []PrintOrder `json:"printOrders"`
}

type ListStatusLogsReq struct {
	SN string `json:"sn"`
}

type ListStatusLogsResp struct {
	Logs []StatusLog `json:"logs"`
}

type PrintOrder struct {
	ID              int64  `json:"id"`
	SN              string `json:"sn"`
	CompilationID   int64  `json:"compilationId"`
	Status          string `json:"status"`
	PrintingAt      int64  `json:"printingAt,omitempty"`
	ShippedAt       int64  `json:"shippedAt,omitempty"`
	DeliveredAt     int64  `json:"deliveredAt,omitempty"`
	ClaimOpenedAt   int64  `json:"claimOpenedAt,omitempty"`
	ClaimResolvedAt int64  `json:"claimResolvedAt,omitempty"`
	TrackingCarrier string `json:"trackingCarrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	ClaimReason     string `json:"claimReason,omitempty"`
	ClaimResolution string `json:"claimResolution,omitempty"`
	ProcessedBy     int64  `json:"processedBy,omitempty"`
	Ctime           int64  `json:"ctime"`
	Utime           int64  `json:"utime"`
}

type StatusLog struct {
	ID         int64  `json:"id"`
	FromStatus string `json:"fromStatus"`
	ToStatus   string `json:"toStatus"`
	ActorID    int64  `json:"actorId"`
	ActorRole  string `json:"actorRole"`
	Reason     string `json:"reason,omitempty"`
	Metadata   string `json:"metadata,omitempty"`
	Ctime      int64  `json:"ctime"`
}

func toPrintOrderVO(po domain.PrintOrder) PrintOrder {
	return PrintOrder{
		ID:              po.ID,
		SN:              po.SN,
		CompilationID:   po.CompilationID,
		Status:          po.Status.String(),
		PrintingAt:      po.PrintingAt,
		ShippedAt:       po.ShippedAt,
		DeliveredAt:     po.DeliveredAt,
		ClaimOpenedAt:   po.ClaimOpenedAt,
		ClaimResolvedAt: po.ClaimResolvedAt,
		TrackingCarrier: po.TrackingCarrier,
		TrackingNumber:  po.TrackingNumber,
		ClaimReason:     po.ClaimReason,
		ClaimResolution: po.ClaimResolution,
		ProcessedBy:     po.ProcessedBy,
		Ctime:           po.Ctime,
		Utime:           po.Utime,
	}
}

func toStatusLogVO(l domain.StatusLog) StatusLog {
	return StatusLog{
		ID:         l.ID,
		FromStatus: l.FromStatus.String(),
		ToStatus:   l.ToStatus.String(),
		ActorID:    l.ActorID,
		ActorRole:  l.ActorRole,
		Reason:     l.Reason,
		Metadata:   l.Metadata,
		Ctime:      l.Ctime,
	}
}
