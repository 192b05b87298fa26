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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/mall/internal/statistics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	summary   domain.Summary
	gotStart  int64
	gotEnd    int64
	callCount int
}

func (f *fakeRepository) Summarize(_ context.Context, start, end int64) (domain.Summary, error) {
	f.gotStart, f.gotEnd = start, end
	f.callCount++
	return f.summary, nil
}

func TestService_Summary(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		summary    domain.Summary
		windowDays int

		wantWindowDays int
		wantAOV        int64
	}{
		{
			name: "客单价为已支付订单的均值",
			summary: domain.Summary{
				TotalOrders: 3,
				PaidOrders:  2,
				// 100.00 + 50.00
				Revenue: 15000,
			},
			windowDays:     7,
			wantWindowDays: 7,
			wantAOV:        7500,
		},
		{
			name: "没有已支付订单时客单价为0",
			summary: domain.Summary{
				TotalOrders: 5,
				PaidOrders:  0,
				Revenue:     0,
			},
			windowDays:     7,
			wantWindowDays: 7,
			wantAOV:        0,
		},
		{
			name:           "窗口天数非法时取默认30天",
			summary:        domain.Summary{},
			windowDays:     -1,
			wantWindowDays: 30,
			wantAOV:        0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepository{summary: tc.summary}
			svc := NewService(repo)

			got, err := svc.Summary(context.Background(), tc.windowDays)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWindowDays, got.WindowDays)
			assert.Equal(t, tc.wantAOV, got.AverageOrderValue)
			assert.Equal(t, tc.summary.TotalOrders, got.TotalOrders)

			// 窗口为 [end - windowDays天, end)
			wantSpan := int64(tc.wantWindowDays) * 24 * 3600 * 1000
			assert.InDelta(t, wantSpan, repo.gotEnd-repo.gotStart, float64(25*3600*1000))
		})
	}
}
