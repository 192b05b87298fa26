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

	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Publish(ctx context.Context, id int64) error
	TakeDown(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) (int64, []domain.Product, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	if p.Status == 0 {
		p.Status = domain.StatusOffShelf
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, p domain.Product) error {
	return s.repo.Update(ctx, p)
}

func (s *service) Publish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusOnShelf)
}

func (s *service) TakeDown(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusOffShelf)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBySKU(ctx context.Context, sku string) (domain.Product, error) {
	return s.repo.FindBySKU(ctx, sku)
}

func (s *service) List(ctx context.Context, offset, limit int) (int64, []domain.Product, error) {
	return s.repo.List(ctx, offset, limit)
}
