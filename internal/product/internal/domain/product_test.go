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

func TestProduct_EffectivePrice(t *testing.T) {
	t.Parallel()

	const now = int64(1000)
	testCases := []struct {
		name      string
		product   Product
		wantPrice int64
	}{
		{
			name:      "无促销价",
			product:   Product{Price: 999},
			wantPrice: 999,
		},
		{
			name:      "促销生效",
			product:   Product{Price: 999, PromoPrice: 799, PromoStart: 500, PromoEnd: 1500},
			wantPrice: 799,
		},
		{
			name:      "促销未开始",
			product:   Product{Price: 999, PromoPrice: 799, PromoStart: 1200, PromoEnd: 1500},
			wantPrice: 999,
		},
		{
			name:      "促销已结束",
			product:   Product{Price: 999, PromoPrice: 799, PromoStart: 100, PromoEnd: 900},
			wantPrice: 999,
		},
		{
			name:      "促销区间边界",
			product:   Product{Price: 999, PromoPrice: 799, PromoStart: 1000, PromoEnd: 1000},
			wantPrice: 799,
		},
		{
			name:      "设置了促销价但未设置区间",
			product:   Product{Price: 999, PromoPrice: 799},
			wantPrice: 999,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantPrice, tc.product.EffectivePrice(now))
		})
	}
}

func TestProduct_StockStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		stock      int64
		wantStatus StockStatus
	}{
		{
			name:       "缺货",
			stock:      0,
			wantStatus: StockStatusOut,
		},
		{
			name:       "库存紧张",
			stock:      5,
			wantStatus: StockStatusLow,
		},
		{
			name:       "有货",
			stock:      6,
			wantStatus: StockStatusAvailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, Product{Stock: tc.stock}.StockStatus())
		})
	}
}
