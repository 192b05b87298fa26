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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 创建订单, 同一 RequestID 的重复提交只会创建一单
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	order := domain.Order{
		BuyerID:         sess.Claims().Uid,
		PaymentMode:     domain.PaymentMode(req.PaymentMode),
		ShippingFee:     req.ShippingFee,
		Taxes:           req.Taxes,
		Discount:        req.Discount,
		ShippingAddress: toAddressDomain(req.ShippingAddress),
		BillingAddress:  toAddressDomain(req.BillingAddress),
		CustomerNote:    req.CustomerNote,
	}
	lines := slice.Map(req.Lines, func(idx int, src CartLine) domain.CartLine {
		return domain.CartLine{ProductID: src.ProductID, Quantity: src.Quantity}
	})

	created, err := h.svc.CreateOrder(ctx.Request.Context(), order, lines)
	switch {
	case err == nil:
		return ginx.Result{
			Data: CreateOrderResp{
				OrderSN: created.SN,
				Total:   created.Total,
			},
		}, nil
	case errors.Is(err, service.ErrInvalidCart):
		return invalidCartResult, nil
	case errors.Is(err, service.ErrProductUnavailable):
		return invalidCartResult, fmt.Errorf("商品不可购买: %w", err)
	case errors.Is(err, inventory.ErrInsufficientStock):
		return insufficientStockResult, nil
	default:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}

	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// ListOrders 分页查询当前买家的订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListByBuyerID(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
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

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindByBuyerIDAndSN(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
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

// CancelOrder 买家取消自己的待处理订单并返还库存
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelByBuyer(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN, req.Reason)
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

func toAddressDomain(a Address) domain.Address {
	return domain.Address{
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func toAddressVO(a domain.Address) Address {
	return Address{
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func toOrderVO(order domain.Order) Order {
	return Order{
		ID:              order.ID,
		SN:              order.SN,
		BuyerID:         order.BuyerID,
		Status:          order.Status.ToUint8(),
		PaymentStatus:   order.PaymentStatus.ToUint8(),
		PaymentMode:     order.PaymentMode.ToUint8(),
		Subtotal:        order.Subtotal,
		ShippingFee:     order.ShippingFee,
		Taxes:           order.Taxes,
		Discount:        order.Discount,
		Total:           order.Total,
		ShippingAddress: toAddressVO(order.ShippingAddress),
		BillingAddress:  toAddressVO(order.BillingAddress),
		CustomerNote:    order.CustomerNote,
		AdminNote:       order.AdminNote,
		PaidAt:          order.PaidAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Name:      src.NameSnapshot,
				SKU:       src.SKUSnapshot,
				Image:     src.ImageSnapshot,
				UnitPrice: src.UnitPriceSnapshot,
				Quantity:  src.Quantity,
				LineTotal: src.LineTotal(),
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
