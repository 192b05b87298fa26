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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/pkg/ordersn"
	"github.com/ecodeclub/mall/internal/statistics"
	testioc "github.com/ecodeclub/mall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestStatisticsModule(t *testing.T) {
	suite.Run(t, new(StatisticsModuleTestSuite))
}

type StatisticsModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc statistics.Service
}

func (s *StatisticsModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	// 统计只读订单表, 借订单模块的初始化建表
	order.InitTablesOnce(s.db, ordersn.NewGenerator())
	s.svc = statistics.InitModule(s.db).Svc
}

func (s *StatisticsModuleTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
}

func (s *StatisticsModuleTestSuite) insertOrder(sn string, status order.Status, paymentStatus order.PaymentStatus, total, ctime int64) {
	s.T().Helper()
	err := s.db.Exec(`
INSERT INTO orders (sn, buyer_id, status, payment_status, payment_mode,
  subtotal, shipping_fee, taxes, discount, total,
  shipping_recipient, shipping_street, shipping_city, shipping_postal_code,
  billing_street, customer_note, admin_note, ctime, utime)
VALUES (?, 1, ?, ?, 1, ?, 0, 0, 0, ?, 'Jean', 'x', 'Paris', '75001', 'x', '', '', ?, ?)`,
		sn, status.ToUint8(), paymentStatus.ToUint8(), total, total, ctime, ctime).Error
	require.NoError(s.T(), err)
}

func (s *StatisticsModuleTestSuite) TestSummary() {
	t := s.T()
	now := time.Now().UnixMilli()
	dayMs := int64(24 * 3600 * 1000)

	// 窗口内: 两单已支付(100.00和50.00), 一单待支付
	s.insertOrder("CMD-2026-000001", order.StatusConfirmed, order.PaymentStatusPaid, 10000, now-dayMs)
	s.insertOrder("CMD-2026-000002", order.StatusDelivered, order.PaymentStatusPaid, 5000, now-2*dayMs)
	s.insertOrder("CMD-2026-000003", order.StatusPending, order.PaymentStatusPending, 7000, now-3*dayMs)
	// 窗口外的订单不参与统计
	s.insertOrder("CMD-2026-000004", order.StatusDelivered, order.PaymentStatusPaid, 99900, now-40*dayMs)

	summary, err := s.svc.Summary(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.WindowDays)
	assert.Equal(t, int64(3), summary.TotalOrders)
	assert.Equal(t, int64(1), summary.ConfirmedOrders)
	assert.Equal(t, int64(1), summary.DeliveredOrders)
	assert.Equal(t, int64(0), summary.CancelledOrders)
	assert.Equal(t, int64(2), summary.PaidOrders)
	assert.Equal(t, int64(15000), summary.Revenue)
	assert.Equal(t, int64(7500), summary.AverageOrderValue)
}

func (s *StatisticsModuleTestSuite) TestSummary_EmptyWindow() {
	t := s.T()
	summary, err := s.svc.Summary(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.Revenue)
	assert.Zero(t, summary.AverageOrderValue)
}
