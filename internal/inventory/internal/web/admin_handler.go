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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/inventory/internal/errs"
	"github.com/ecodeclub/mall/internal/inventory/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/inventory/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/inventory")
	g.POST("/stock", ginx.B[StockReq](h.Stock))
	g.POST("/restock", ginx.B[RestockReq](h.Restock))
}

func (h *AdminHandler) Stock(ctx *ginx.Context, req StockReq) (ginx.Result, error) {
	stock, err := h.svc.StockOf(ctx.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("查询库存失败: %w", err)
	}
	return ginx.Result{
		Data: StockResp{
			ProductID: req.ProductID,
			Stock:     stock,
		},
	}, nil
}

func (h *AdminHandler) Restock(ctx *ginx.Context, req RestockReq) (ginx.Result, error) {
	if req.Quantity <= 0 {
		return invalidQuantityResult, nil
	}
	err := h.svc.Release(ctx.Request.Context(), req.ProductID, req.Quantity)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, dao.ErrProductNotFound):
		return productNotFoundResult, nil
	default:
		return systemErrorResult, fmt.Errorf("补货失败: %w", err)
	}
}
