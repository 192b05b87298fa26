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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
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
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[OrderDetailReq](h.Detail))
	g.POST("/detail/sn", ginx.B[RetrieveOrderDetailReq](h.DetailBySN))
	g.POST("/status", ginx.B[SetStatusReq](h.SetStatus))
	g.POST("/payment_status", ginx.B[SetPaymentStatusReq](h.SetPaymentStatus))
	g.POST("/cancel", ginx.B[AdminCancelOrderReq](h.Cancel))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit, domain.Status(req.Status))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: toOrderVO(order),
		},
	}, nil
}

// DetailBySN 客服按订单号查单, 买家报的是订单号而不是内部ID
func (h *AdminHandler) DetailBySN(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: toOrderVO(order),
		},
	}, nil
}

func (h *AdminHandler) SetStatus(ctx *ginx.Context, req SetStatusReq) (ginx.Result, error) {
	err := h.svc.SetStatus(ctx.Request.Context(), req.ID, domain.Status(req.Status))
	return h.toStatusResult(err)
}

func (h *AdminHandler) SetPaymentStatus(ctx *ginx.Context, req SetPaymentStatusReq) (ginx.Result, error) {
	err := h.svc.SetPaymentStatus(ctx.Request.Context(), req.ID, domain.PaymentStatus(req.PaymentStatus))
	return h.toStatusResult(err)
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req AdminCancelOrderReq) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), req.ID, req.Reason)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, service.ErrNotCancellable):
		return notCancelableResult, nil
	default:
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
}

func (h *AdminHandler) toStatusResult(err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, nil
	case errors.Is(err, service.ErrNotCancellable):
		return notCancelableResult, nil
	case errors.Is(err, service.ErrConcurrentUpdate):
		return invalidTransitionResult, nil
	default:
		return systemErrorResult, fmt.Errorf("更新订单状态失败: %w", err)
	}
}
