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
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("商品不存在")
	ErrDuplicatedSKU   = errors.New("商品SKU重复")
)

type ProductDAO interface {
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySKU(ctx context.Context, sku string) (Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	if err != nil {
		var me *mysql.MySQLError
		const uniqueIndexErrNo uint16 = 1062
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicatedSKU
		}
		return 0, err
	}
	return p.Id, nil
}

// Update 不更新库存, 库存只能通过库存台账模块变更
func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	p.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Select("Name", "Description", "Brand", "Images", "Price",
			"PromoPrice", "PromoStart", "PromoEnd", "Utime").
		Updates(&p).Error
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrProductNotFound
	}
	return res, err
}

func (d *ProductGORMDAO) FindBySKU(ctx context.Context, sku string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("sku = ?", sku).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrProductNotFound
	}
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SKU         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sku;comment:商品SKU编码"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Brand       string `gorm:"type:varchar(255);not null;default:'';comment:品牌"`
	Images      string `gorm:"not null;default:'';comment:商品图片,JSON数组,CDN绝对路径"`
	Price       int64  `gorm:"not null;comment:商品基准价;单位为分, 999表示9.99元"`
	PromoPrice  int64  `gorm:"not null;default:0;comment:促销价;单位为分, 0表示未设置"`
	PromoStart  int64  `gorm:"not null;default:0;comment:促销开始时间,UTC Unix毫秒数"`
	PromoEnd    int64  `gorm:"not null;default:0;comment:促销结束时间,UTC Unix毫秒数"`
	Stock       int64  `gorm:"not null;default:0;comment:库存数量"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}
