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

func TestOrder_CalculateTotal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		order        Order
		wantSubtotal int64
		wantTotal    int64
	}{
		{
			name: "单个订单项",
			order: Order{
				Items: []OrderItem{
					{UnitPriceSnapshot: 999, Quantity: 2},
				},
			},
			wantSubtotal: 1998,
			wantTotal:    1998,
		},
		{
			name: "多个订单项加运费税费减折扣",
			order: Order{
				ShippingFee: 500,
				Taxes:       300,
				Discount:    200,
				Items: []OrderItem{
					{UnitPriceSnapshot: 1000, Quantity: 3},
					{UnitPriceSnapshot: 250, Quantity: 1},
				},
			},
			wantSubtotal: 3250,
			wantTotal:    3850,
		},
		{
			name:         "无订单项",
			order:        Order{ShippingFee: 100},
			wantSubtotal: 0,
			wantTotal:    100,
		},
		{
			name: "重算覆盖旧值",
			order: Order{
				Subtotal: 77777,
				Total:    88888,
				Items: []OrderItem{
					{UnitPriceSnapshot: 100, Quantity: 1},
				},
			},
			wantSubtotal: 100,
			wantTotal:    100,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.order.CalculateTotal()
			assert.Equal(t, tc.wantSubtotal, tc.order.Subtotal)
			assert.Equal(t, tc.wantTotal, tc.order.Total)
			assert.Equal(t, tc.order.Total,
				tc.order.Subtotal+tc.order.ShippingFee+tc.order.Taxes-tc.order.Discount)
		})
	}
}

func TestOrderItem_LineTotal(t *testing.T) {
	t.Parallel()
	item := OrderItem{UnitPriceSnapshot: 1234, Quantity: 3}
	assert.Equal(t, int64(3702), item.LineTotal())
}

func TestAddress_IsZero(t *testing.T) {
	t.Parallel()
	assert.True(t, Address{}.IsZero())
	assert.False(t, Address{City: "Paris"}.IsZero())
}
