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

package ordersn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Format(t *testing.T) {
	g := NewGeneratorWith(func() time.Time {
		return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	})

	testCases := []struct {
		name   string
		period int64
		seq    int64
		want   string
	}{
		{
			name:   "序号为1",
			period: 2024,
			seq:    1,
			want:   "CMD-2024-000001",
		},
		{
			name:   "序号为6位",
			period: 2024,
			seq:    999999,
			want:   "CMD-2024-999999",
		},
		{
			name:   "序号超过6位不截断",
			period: 2024,
			seq:    1234567,
			want:   "CMD-2024-1234567",
		},
		{
			name:   "跨年份",
			period: 2025,
			seq:    42,
			want:   "CMD-2025-000042",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Format(tc.period, tc.seq))
		})
	}
}

func TestGenerator_Period(t *testing.T) {
	g := NewGeneratorWith(func() time.Time {
		return time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	})
	assert.Equal(t, int64(2024), g.Period())
}
