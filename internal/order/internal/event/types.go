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

package event

const OrderPaidEventName = "order_paid_events"

// OrderPaidEvent 订单支付成功后发出, 下游发送确认邮件
type OrderPaidEvent struct {
	OrderSN   string `json:"orderSN"`
	BuyerID   int64  `json:"buyerID"`
	SessionID int64  `json:"sessionID"`
	Package   string `json:"package"`
	Amount    int64  `json:"amount"`
}
