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

	"github.com/ecodeclub/mall/internal/inventory/internal/repository/dao"
)

// Service 库存台账, 持有每个商品的库存计数
// Reserve/Release 直接作用于基础连接, 订单模块在事务内通过 NewTxLedger 取事务版台账
type Service interface {
	Reserve(ctx context.Context, productID, quantity int64) error
	Release(ctx context.Context, productID, quantity int64) error
	StockOf(ctx context.Context, productID int64) (int64, error)
}

func NewService(d dao.InventoryDAO) Service {
	return &service{dao: d}
}

type service struct {
	dao dao.InventoryDAO
}

func (s *service) Reserve(ctx context.Context, productID, quantity int64) error {
	return s.dao.Reserve(ctx, productID, quantity)
}

func (s *service) Release(ctx context.Context, productID, quantity int64) error {
	return s.dao.Release(ctx, productID, quantity)
}

func (s *service) StockOf(ctx context.Context, productID int64) (int64, error) {
	return s.dao.StockOf(ctx, productID)
}
