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

package domain

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending   Status = 1 // 待处理
	StatusConfirmed Status = 2 // 已确认
	StatusPreparing Status = 3 // 备货中
	StatusShipped   Status = 4 // 已发货
	StatusDelivered Status = 5 // 已送达
	StatusCancelled Status = 6 // 已取消
)

// statusTransitions 枚举全部合法的订单状态流转,
// 所有校验都经过这张表, 不允许在调用方散落判断
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

func (s Status) IsValid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range statusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Cancellable 已发货及之后的订单不能取消, 退货退款属于独立流程
func (s Status) Cancellable() bool {
	return s.CanTransitionTo(StatusCancelled)
}

// IsTerminal 没有任何出边的状态
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending  PaymentStatus = 1 // 待支付
	PaymentStatusPaid     PaymentStatus = 2 // 已支付
	PaymentStatusRefunded PaymentStatus = 3 // 已退款
	PaymentStatusFailed   PaymentStatus = 4 // 支付失败
)

var paymentStatusTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:     {PaymentStatusRefunded, PaymentStatusFailed},
	PaymentStatusRefunded: {PaymentStatusFailed},
}

func (s PaymentStatus) IsValid() bool {
	return s >= PaymentStatusPending && s <= PaymentStatusFailed
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, t := range paymentStatusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
