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

// Summary 一个统计窗口内的订单汇总, 金额单位为分
type Summary struct {
	// WindowDays 统计窗口天数, 截止当前时刻
	WindowDays int

	TotalOrders     int64
	ConfirmedOrders int64
	DeliveredOrders int64
	CancelledOrders int64
	// PaidOrders 窗口内已支付订单数, 是收入与客单价的分母
	PaidOrders int64
	// Revenue 已支付订单的应付总额之和
	Revenue int64
	// AverageOrderValue 已支付订单的平均应付总额, 没有已支付订单时为0
	AverageOrderValue int64
}
