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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInsufficientStock = errors.New("库存不足")
	ErrProductNotFound   = errors.New("商品不存在")
)

// InsufficientStockError 携带扣减失败时的请求量与实际可用量
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("库存不足: productID = %d, 请求 %d, 可用 %d", e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type InventoryDAO interface {
	// Reserve 条件扣减库存, 检查与扣减为同一条语句, 并发下不会超卖
	Reserve(ctx context.Context, productID, quantity int64) error
	// Release 归还库存, 仅在取消订单时调用
	Release(ctx context.Context, productID, quantity int64) error
	StockOf(ctx context.Context, productID int64) (int64, error)
}

type InventoryGORMDAO struct {
	db *egorm.Component
}

// NewInventoryGORMDAO 的 db 可以是基础连接, 也可以是事务句柄,
// 订单模块在自己的事务内用事务句柄构造一个临时台账
func NewInventoryGORMDAO(db *egorm.Component) InventoryDAO {
	return &InventoryGORMDAO{db: db}
}

func (d *InventoryGORMDAO) Reserve(ctx context.Context, productID, quantity int64) error {
	res := d.db.WithContext(ctx).Table("products").
		Where("id = ? AND stock >= ?", productID, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// 扣减没有命中, 区分商品不存在和库存不足, 查询仅用于报错
	available, err := d.StockOf(ctx, productID)
	if err != nil {
		return err
	}
	return &InsufficientStockError{ProductID: productID, Requested: quantity, Available: available}
}

func (d *InventoryGORMDAO) Release(ctx context.Context, productID, quantity int64) error {
	res := d.db.WithContext(ctx).Table("products").
		Where("id = ?", productID).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", ErrProductNotFound, productID)
	}
	return nil
}

func (d *InventoryGORMDAO) StockOf(ctx context.Context, productID int64) (int64, error) {
	var row struct {
		Stock int64
	}
	err := d.db.WithContext(ctx).Table("products").
		Select("stock").
		Where("id = ?", productID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: id = %d", ErrProductNotFound, productID)
	}
	return row.Stock, err
}
