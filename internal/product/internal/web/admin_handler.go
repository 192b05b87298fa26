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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
	g.POST("/publish", ginx.B[ProductStatusReq](h.Publish))
	g.POST("/take_down", ginx.B[ProductStatusReq](h.TakeDown))
	g.POST("/list", ginx.B[ListProductsReq](h.List))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	if err := h.validate(req.Product); err != nil {
		return invalidInputResult, nil
	}
	p := domain.Product{
		ID:          req.Product.ID,
		SKU:         req.Product.SKU,
		Name:        req.Product.Name,
		Description: req.Product.Description,
		Brand:       req.Product.Brand,
		Images:      req.Product.Images,
		Price:       req.Product.Price,
		PromoPrice:  req.Product.PromoPrice,
		PromoStart:  req.Product.PromoStart,
		PromoEnd:    req.Product.PromoEnd,
		Stock:       req.Product.Stock,
	}
	if p.ID == 0 {
		id, err := h.svc.Create(ctx.Request.Context(), p)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{Data: SaveProductResp{ID: id}}, nil
	}
	if err := h.svc.Update(ctx.Request.Context(), p); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveProductResp{ID: p.ID}}, nil
}

// validate 保存前的入参校验, 促销窗口允许缺省但不允许倒置
func (h *AdminHandler) validate(p Product) error {
	if p.SKU == "" || p.Name == "" {
		return errors.New("SKU和名称不能为空")
	}
	if p.Price <= 0 {
		return errors.New("价格必须为正数")
	}
	if p.PromoPrice < 0 || p.Stock < 0 {
		return errors.New("促销价和库存不能为负数")
	}
	if p.PromoEnd != 0 && p.PromoEnd < p.PromoStart {
		return errors.New("促销窗口倒置")
	}
	return nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req ProductStatusReq) (ginx.Result, error) {
	if err := h.svc.Publish(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) TakeDown(ctx *ginx.Context, req ProductStatusReq) (ginx.Result, error) {
	if err := h.svc.TakeDown(ctx.Request.Context(), req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

// List 管理端查询全部商品, 不过滤上架状态
func (h *AdminHandler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	count, products, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	now := time.Now().UnixMilli()
	return ginx.Result{
		Data: ListProductsResp{
			Total: count,
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src, now)
			}),
		},
	}, nil
}
