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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		from   Status
		to     Status
		wantOK bool
	}{
		{name: "待处理到已确认", from: StatusPending, to: StatusConfirmed, wantOK: true},
		{name: "已确认到备货中", from: StatusConfirmed, to: StatusPreparing, wantOK: true},
		{name: "备货中到已发货", from: StatusPreparing, to: StatusShipped, wantOK: true},
		{name: "已发货到已送达", from: StatusShipped, to: StatusDelivered, wantOK: true},
		{name: "待处理直接到已送达", from: StatusPending, to: StatusDelivered, wantOK: false},
		{name: "待处理到已取消", from: StatusPending, to: StatusCancelled, wantOK: true},
		{name: "已确认到已取消", from: StatusConfirmed, to: StatusCancelled, wantOK: true},
		{name: "备货中到已取消", from: StatusPreparing, to: StatusCancelled, wantOK: true},
		{name: "已发货到已取消", from: StatusShipped, to: StatusCancelled, wantOK: false},
		{name: "已送达到已取消", from: StatusDelivered, to: StatusCancelled, wantOK: false},
		{name: "已取消到已确认", from: StatusCancelled, to: StatusConfirmed, wantOK: false},
		{name: "状态不前进", from: StatusConfirmed, to: StatusConfirmed, wantOK: false},
		{name: "逆向流转", from: StatusShipped, to: StatusPreparing, wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantOK, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_Cancellable(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusConfirmed.Cancellable())
	assert.True(t, StatusPreparing.Cancellable())
	assert.False(t, StatusShipped.Cancellable())
	assert.False(t, StatusDelivered.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status(0).IsValid())
	assert.False(t, Status(7).IsValid())
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		from   PaymentStatus
		to     PaymentStatus
		wantOK bool
	}{
		{name: "待支付到已支付", from: PaymentStatusPending, to: PaymentStatusPaid, wantOK: true},
		{name: "已支付到已退款", from: PaymentStatusPaid, to: PaymentStatusRefunded, wantOK: true},
		{name: "待支付到失败", from: PaymentStatusPending, to: PaymentStatusFailed, wantOK: true},
		{name: "已支付到失败", from: PaymentStatusPaid, to: PaymentStatusFailed, wantOK: true},
		{name: "已退款到失败", from: PaymentStatusRefunded, to: PaymentStatusFailed, wantOK: true},
		{name: "待支付直接到已退款", from: PaymentStatusPending, to: PaymentStatusRefunded, wantOK: false},
		{name: "已退款到已支付", from: PaymentStatusRefunded, to: PaymentStatusPaid, wantOK: false},
		{name: "失败是终态", from: PaymentStatusFailed, to: PaymentStatusPending, wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantOK, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPaymentStatus_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, PaymentStatusPending.IsValid())
	assert.True(t, PaymentStatusFailed.IsValid())
	assert.False(t, PaymentStatus(0).IsValid())
	assert.False(t, PaymentStatus(5).IsValid())
}
