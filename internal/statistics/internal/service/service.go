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
	"time"

	"github.com/ecodeclub/mall/internal/statistics/internal/domain"
	"github.com/ecodeclub/mall/internal/statistics/internal/repository"
)

const defaultWindowDays = 30

type Service interface {
	// Summary 统计最近 windowDays 天的订单, windowDays 不合法时取默认30天
	Summary(ctx context.Context, windowDays int) (domain.Summary, error)
}

func NewService(repo repository.StatisticsRepository) Service {
	return &service{repo: repo, nowFunc: time.Now}
}

type service struct {
	repo    repository.StatisticsRepository
	nowFunc func() time.Time
}

func (s *service) Summary(ctx context.Context, windowDays int) (domain.Summary, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	end := s.nowFunc()
	start := end.AddDate(0, 0, -windowDays)

	summary, err := s.repo.Summarize(ctx, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return domain.Summary{}, err
	}
	summary.WindowDays = windowDays
	if summary.PaidOrders > 0 {
		summary.AverageOrderValue = summary.Revenue / summary.PaidOrders
	}
	return summary, nil
}
