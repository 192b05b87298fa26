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
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) (int64, []domain.Product, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

type productRepository struct {
	dao    dao.ProductDAO
	logger *elog.Component
}

func (p *productRepository) Create(ctx context.Context, product domain.Product) (int64, error) {
	return p.dao.Create(ctx, p.toEntity(product))
}

func (p *productRepository) Update(ctx context.Context, product domain.Product) error {
	return p.dao.Update(ctx, p.toEntity(product))
}

func (p *productRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return p.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := p.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) FindBySKU(ctx context.Context, sku string) (domain.Product, error) {
	product, err := p.dao.FindBySKU(ctx, sku)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) (int64, []domain.Product, error) {
	var (
		eg       errgroup.Group
		count    int64
		products []dao.Product
	)
	eg.Go(func() error {
		var err error
		count, err = p.dao.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		products, err = p.dao.List(ctx, offset, limit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return count, slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) toEntity(product domain.Product) dao.Product {
	images, err := json.Marshal(product.Images)
	if err != nil {
		p.logger.Error("序列化商品图片失败", elog.FieldErr(err), elog.Int64("id", product.ID))
	}
	return dao.Product{
		Id:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Brand:       product.Brand,
		Images:      string(images),
		Price:       product.Price,
		PromoPrice:  product.PromoPrice,
		PromoStart:  product.PromoStart,
		PromoEnd:    product.PromoEnd,
		Stock:       product.Stock,
		Status:      product.Status.ToUint8(),
	}
}

func (p *productRepository) toDomain(product dao.Product) domain.Product {
	var images []string
	if product.Images != "" {
		if err := json.Unmarshal([]byte(product.Images), &images); err != nil {
			p.logger.Error("反序列化商品图片失败", elog.FieldErr(err), elog.Int64("id", product.Id))
		}
	}
	return domain.Product{
		ID:          product.Id,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Brand:       product.Brand,
		Images:      images,
		Price:       product.Price,
		PromoPrice:  product.PromoPrice,
		PromoStart:  product.PromoStart,
		PromoEnd:    product.PromoEnd,
		Stock:       product.Stock,
		Status:      domain.Status(product.Status),
		Ctime:       product.Ctime,
		Utime:       product.Utime,
	}
}
