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

package repository

import (
	"context"

	"github.com/ecodeclub/mall/internal/statistics/internal/domain"
	"github.com/ecodeclub/mall/internal/statistics/internal/repository/dao"
)

type StatisticsRepository interface {
	Summarize(ctx context.Context, start, end int64) (domain.Summary, error)
}

func NewStatisticsRepository(d dao.StatisticsDAO) StatisticsRepository {
	return &statisticsRepository{d: d}
}

type statisticsRepository struct {
	d dao.StatisticsDAO
}

func (s *statisticsRepository) Summarize(ctx context.Context, start, end int64) (domain.Summary, error) {
	row, err := s.d.Summarize(ctx, start, end)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{
		TotalOrders:     row.TotalOrders,
		ConfirmedOrders: row.ConfirmedOrders,
		DeliveredOrders: row.DeliveredOrders,
		CancelledOrders: row.CancelledOrders,
		PaidOrders:      row.PaidOrders,
		Revenue:         row.Revenue,
	}, nil
}
