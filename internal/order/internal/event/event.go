// Copyright 2023 ecodeclub
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

const (
	orderEventName = "order_events"

	// ActionCreated 等是订单事件动作, 下游(邮件通知/营销)按动作区分处理
	ActionCreated       = "created"
	ActionStatusChanged = "status_changed"
	ActionPaymentChange = "payment_changed"
	ActionCancelled     = "cancelled"
)

type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	Action  string `json:"action"`
	// Status 动作发生后的订单状态
	Status uint8 `json:"status"`
	// PaymentStatus 动作发生后的支付状态
	PaymentStatus uint8 `json:"paymentStatus"`
	// Total 应付总额, 单位为分
	Total int64 `json:"total"`
}
