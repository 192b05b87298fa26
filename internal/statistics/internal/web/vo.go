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

package web

// SummaryReq WindowDays 为0时服务端取默认窗口
type SummaryReq struct {
	WindowDays int `json:"windowDays,omitempty"`
}

type Summary struct {
	WindowDays        int   `json:"windowDays"`
	TotalOrders       int64 `json:"totalOrders"`
	ConfirmedOrders   int64 `json:"confirmedOrders"`
	DeliveredOrders   int64 `json:"deliveredOrders"`
	CancelledOrders   int64 `json:"cancelledOrders"`
	PaidOrders        int64 `json:"paidOrders"`
	Revenue           int64 `json:"revenue"`
	AverageOrderValue int64 `json:"averageOrderValue"`
}
