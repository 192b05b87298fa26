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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to domain.Status, shippedAt, deliveredAt int64) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, from, to domain.PaymentStatus, paidAt int64) error
	Cancel(ctx context.Context, orderID int64, from domain.Status, adminNote string) error
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindByBuyerIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error)
	TotalByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int, status domain.Status) ([]domain.Order, error)
	Total(ctx context.Context, status domain.Status) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := o.d.Create(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = created.Id
	order.SN = created.SN
	order.Ctime, order.Utime = created.Ctime, created.Utime
	return order, nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to domain.Status, shippedAt, deliveredAt int64) error {
	return o.d.UpdateStatus(ctx, orderID, from.ToUint8(), to.ToUint8(), shippedAt, deliveredAt)
}

func (o *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID int64, from, to domain.PaymentStatus, paidAt int64) error {
	return o.d.UpdatePaymentStatus(ctx, orderID, from.ToUint8(), to.ToUint8(), paidAt)
}

func (o *orderRepository) Cancel(ctx context.Context, orderID int64, from domain.Status, adminNote string) error {
	return o.d.Cancel(ctx, orderID, from.ToUint8(), adminNote)
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) FindByBuyerIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	order, err := o.d.FindByBuyerIDAndSN(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.withItems(ctx, order)
}

func (o *orderRepository) withItems(ctx context.Context, order dao.Order) (domain.Order, error) {
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	orders, err := o.d.ListByBuyerID(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, err
	}
	return o.toOrderDomains(ctx, orders)
}

func (o *orderRepository) TotalByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerID(ctx, buyerID)
}

func (o *orderRepository) List(ctx context.Context, offset, limit int, status domain.Status) ([]domain.Order, error) {
	orders, err := o.d.List(ctx, offset, limit, status.ToUint8())
	if err != nil {
		return nil, err
	}
	return o.toOrderDomains(ctx, orders)
}

func (o *orderRepository) Total(ctx context.Context, status domain.Status) (int64, error) {
	return o.d.Count(ctx, status.ToUint8())
}

func (o *orderRepository) toOrderDomains(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		d, err := o.withItems(ctx, order)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:            order.ID,
		SN:            order.SN,
		BuyerId:       order.BuyerID,
		Status:        order.Status.ToUint8(),
		PaymentStatus: order.PaymentStatus.ToUint8(),
		PaymentMode:   order.PaymentMode.ToUint8(),
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Taxes:         order.Taxes,
		Discount:      order.Discount,
		Total:         order.Total,

		ShippingRecipient:  order.ShippingAddress.Recipient,
		ShippingPhone:      order.ShippingAddress.Phone,
		ShippingStreet:     order.ShippingAddress.Street,
		ShippingCity:       order.ShippingAddress.City,
		ShippingPostalCode: order.ShippingAddress.PostalCode,
		ShippingCountry:    order.ShippingAddress.Country,

		BillingRecipient:  order.BillingAddress.Recipient,
		BillingPhone:      order.BillingAddress.Phone,
		BillingStreet:     order.BillingAddress.Street,
		BillingCity:       order.BillingAddress.City,
		BillingPostalCode: order.BillingAddress.PostalCode,
		BillingCountry:    order.BillingAddress.Country,

		CustomerNote: order.CustomerNote,
		AdminNote:    order.AdminNote,
		PaidAt:       order.PaidAt,
		ShippedAt:    order.ShippedAt,
		DeliveredAt:  order.DeliveredAt,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			OrderId:           src.OrderID,
			ProductId:         src.ProductID,
			NameSnapshot:      src.NameSnapshot,
			SKUSnapshot:       src.SKUSnapshot,
			ImageSnapshot:     src.ImageSnapshot,
			UnitPriceSnapshot: src.UnitPriceSnapshot,
			Quantity:          src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:            order.Id,
		SN:            order.SN,
		BuyerID:       order.BuyerId,
		Status:        domain.Status(order.Status),
		PaymentStatus: domain.PaymentStatus(order.PaymentStatus),
		PaymentMode:   domain.PaymentMode(order.PaymentMode),
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Taxes:         order.Taxes,
		Discount:      order.Discount,
		Total:         order.Total,
		ShippingAddress: domain.Address{
			Recipient:  order.ShippingRecipient,
			Phone:      order.ShippingPhone,
			Street:     order.ShippingStreet,
			City:       order.ShippingCity,
			PostalCode: order.ShippingPostalCode,
			Country:    order.ShippingCountry,
		},
		BillingAddress: domain.Address{
			Recipient:  order.BillingRecipient,
			Phone:      order.BillingPhone,
			Street:     order.BillingStreet,
			City:       order.BillingCity,
			PostalCode: order.BillingPostalCode,
			Country:    order.BillingCountry,
		},
		CustomerNote: order.CustomerNote,
		AdminNote:    order.AdminNote,
		PaidAt:       order.PaidAt,
		ShippedAt:    order.ShippedAt,
		DeliveredAt:  order.DeliveredAt,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:           src.OrderId,
				ProductID:         src.ProductId,
				NameSnapshot:      src.NameSnapshot,
				SKUSnapshot:       src.SKUSnapshot,
				ImageSnapshot:     src.ImageSnapshot,
				UnitPriceSnapshot: src.UnitPriceSnapshot,
				Quantity:          src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
