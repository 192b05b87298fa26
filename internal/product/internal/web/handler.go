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

package web

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.POST("/detail", ginx.B[ProductDetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// List 分页查询上架商品
func (h *Handler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	count, products, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	now := time.Now().UnixMilli()
	resp := ListProductsResp{Total: count}
	for _, p := range products {
		if p.Status != domain.StatusOnShelf {
			continue
		}
		resp.Products = append(resp.Products, toProductVO(p, now))
	}
	return ginx.Result{Data: resp}, nil
}

// Detail 商品详情, 支持按ID或SKU查询
func (h *Handler) Detail(ctx *ginx.Context, req ProductDetailReq) (ginx.Result, error) {
	var (
		p   domain.Product
		err error
	)
	switch {
	case req.ID > 0:
		p, err = h.svc.FindByID(ctx.Request.Context(), req.ID)
	case req.SKU != "":
		p, err = h.svc.FindBySKU(ctx.Request.Context(), req.SKU)
	default:
		return systemErrorResult, fmt.Errorf("商品ID与SKU均为空")
	}
	if errors.Is(err, dao.ErrProductNotFound) {
		return productNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	if p.Status != domain.StatusOnShelf {
		return productNotFoundResult, fmt.Errorf("商品未上架: id = %d", p.ID)
	}
	return ginx.Result{
		Data: ProductDetailResp{Product: toProductVO(p, time.Now().UnixMilli())},
	}, nil
}

func toProductVO(p domain.Product, now int64) Product {
	return Product{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Brand:          p.Brand,
		Images:         p.Images,
		Price:          p.Price,
		PromoPrice:     p.PromoPrice,
		PromoStart:     p.PromoStart,
		PromoEnd:       p.PromoEnd,
		EffectivePrice: p.EffectivePrice(now),
		Stock:          p.Stock,
		StockStatus:    p.StockStatus().ToUint8(),
		Status:         p.Status.ToUint8(),
	}
}
