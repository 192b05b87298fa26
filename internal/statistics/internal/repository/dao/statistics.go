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

package dao

import (
	"context"

	"github.com/ecodeclub/mall/internal/order"
	"github.com/ego-component/egorm"
)

type StatisticsDAO interface {
	// Summarize 统计 [start, end) 内创建的订单, 时间为UTC Unix毫秒数
	Summarize(ctx context.Context, start, end int64) (SummaryRow, error)
}

type StatisticsGORMDAO struct {
	db *egorm.Component
}

func NewStatisticsGORMDAO(db *egorm.Component) StatisticsDAO {
	return &StatisticsGORMDAO{db: db}
}

func (d *StatisticsGORMDAO) Summarize(ctx context.Context, start, end int64) (SummaryRow, error) {
	var row SummaryRow
	// 一条聚合查询拿全所有计数, 避免窗口内数据变化导致口径不一致
	err := d.db.WithContext(ctx).Raw(`
SELECT
  COUNT(*) AS total_orders,
  COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS confirmed_orders,
  COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS delivered_orders,
  COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled_orders,
  COALESCE(SUM(CASE WHEN payment_status = ? THEN 1 ELSE 0 END), 0) AS paid_orders,
  COALESCE(SUM(CASE WHEN payment_status = ? THEN total ELSE 0 END), 0) AS revenue
FROM orders
WHERE ctime >= ? AND ctime < ?`,
		order.StatusConfirmed.ToUint8(),
		order.StatusDelivered.ToUint8(),
		order.StatusCancelled.ToUint8(),
		order.PaymentStatusPaid.ToUint8(),
		order.PaymentStatusPaid.ToUint8(),
		start, end).Scan(&row).Error
	return row, err
}

type SummaryRow struct {
	TotalOrders     int64 `gorm:"column:total_orders"`
	ConfirmedOrders int64 `gorm:"column:confirmed_orders"`
	DeliveredOrders int64 `gorm:"column:delivered_orders"`
	CancelledOrders int64 `gorm:"column:cancelled_orders"`
	PaidOrders      int64 `gorm:"column:paid_orders"`
	Revenue         int64 `gorm:"column:revenue"`
}
