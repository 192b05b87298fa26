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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/event"
	"github.com/ecodeclub/mall/internal/product"
	productmocks "github.com/ecodeclub/mall/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRepository 内存版订单仓储, 只实现测试用到的语义
type fakeRepository struct {
	orders map[int64]domain.Order
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[int64]domain.Order), nextID: 1}
}

func (f *fakeRepository) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = f.nextID
	order.SN = "CMD-2026-000001"
	f.nextID++
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, orderID int64, from, to domain.Status, shippedAt, deliveredAt int64) error {
	o, ok := f.orders[orderID]
	if !ok || o.Status != from {
		return ErrConcurrentUpdate
	}
	o.Status = to
	if shippedAt > 0 {
		o.ShippedAt = shippedAt
	}
	if deliveredAt > 0 {
		o.DeliveredAt = deliveredAt
	}
	f.orders[orderID] = o
	return nil
}

func (f *fakeRepository) UpdatePaymentStatus(_ context.Context, orderID int64, from, to domain.PaymentStatus, paidAt int64) error {
	o, ok := f.orders[orderID]
	if !ok || o.PaymentStatus != from {
		return ErrConcurrentUpdate
	}
	o.PaymentStatus = to
	if paidAt > 0 {
		o.PaidAt = paidAt
	}
	f.orders[orderID] = o
	return nil
}

func (f *fakeRepository) Cancel(_ context.Context, orderID int64, from domain.Status, adminNote string) error {
	o, ok := f.orders[orderID]
	if !ok || o.Status != from {
		return ErrConcurrentUpdate
	}
	o.Status = domain.StatusCancelled
	o.AdminNote = adminNote
	f.orders[orderID] = o
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeRepository) FindBySN(_ context.Context, sn string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.SN == sn {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

func (f *fakeRepository) FindByBuyerIDAndSN(_ context.Context, buyerID int64, sn string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.SN == sn && o.BuyerID == buyerID {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

func (f *fakeRepository) ListByBuyerID(_ context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepository) TotalByBuyerID(_ context.Context, buyerID int64) (int64, error) {
	var total int64
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			total++
		}
	}
	return total, nil
}

func (f *fakeRepository) List(_ context.Context, offset, limit int, status domain.Status) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if status != 0 && o.Status != status {
			continue
		}
		res = append(res, o)
	}
	return res, nil
}

func (f *fakeRepository) Total(_ context.Context, status domain.Status) (int64, error) {
	res, _ := f.List(context.Background(), 0, 0, status)
	return int64(len(res)), nil
}

type fakeProducer struct {
	events []event.OrderEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderEvent) error {
	f.events = append(f.events, evt)
	return nil
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	onShelf := func(id int64, price int64, stock int64) product.Product {
		return product.Product{
			ID:     id,
			SKU:    "SKU-001",
			Name:   "咖啡机",
			Images: []string{"https://cdn.example.com/1.png"},
			Price:  price,
			Stock:  stock,
			Status: product.StatusOnShelf,
		}
	}

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) product.Service

		order domain.Order
		lines []domain.CartLine

		wantErr error
		after   func(t *testing.T, created domain.Order, producer *fakeProducer)
	}{
		{
			name: "下单成功_快照与总额正确",
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(onShelf(1, 2500, 10), nil)
				return svc
			},
			order: domain.Order{
				BuyerID:     7,
				ShippingFee: 500,
				Taxes:       100,
				Discount:    600,
				ShippingAddress: domain.Address{
					Recipient: "Jean Dupont",
					Street:    "1 rue de Rivoli",
					City:      "Paris",
				},
			},
			lines: []domain.CartLine{{ProductID: 1, Quantity: 2}},
			after: func(t *testing.T, created domain.Order, producer *fakeProducer) {
				assert.Equal(t, domain.StatusPending, created.Status)
				assert.Equal(t, domain.PaymentStatusPending, created.PaymentStatus)
				assert.Equal(t, int64(5000), created.Subtotal)
				// 5000 + 500 + 100 - 600
				assert.Equal(t, int64(5000), created.Total)
				require.Len(t, created.Items, 1)
				assert.Equal(t, "咖啡机", created.Items[0].NameSnapshot)
				assert.Equal(t, "SKU-001", created.Items[0].SKUSnapshot)
				assert.Equal(t, int64(2500), created.Items[0].UnitPriceSnapshot)
				// 未填账单地址时回落到收货地址
				assert.Equal(t, created.ShippingAddress, created.BillingAddress)
				require.Len(t, producer.events, 1)
				assert.Equal(t, event.ActionCreated, producer.events[0].Action)
			},
		},
		{
			name: "下单成功_促销期内按促销价快照",
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				p := onShelf(1, 2500, 10)
				p.PromoPrice = 1999
				p.PromoStart = time.Now().Add(-time.Hour).UnixMilli()
				p.PromoEnd = time.Now().Add(time.Hour).UnixMilli()
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return svc
			},
			order: domain.Order{
				BuyerID:         7,
				ShippingAddress: domain.Address{Recipient: "Jean", Street: "x", City: "Paris"},
			},
			lines: []domain.CartLine{{ProductID: 1, Quantity: 1}},
			after: func(t *testing.T, created domain.Order, _ *fakeProducer) {
				require.Len(t, created.Items, 1)
				assert.Equal(t, int64(1999), created.Items[0].UnitPriceSnapshot)
				assert.Equal(t, int64(1999), created.Total)
			},
		},
		{
			name: "下单成功_促销过期按基准价快照",
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				p := onShelf(1, 2500, 10)
				p.PromoPrice = 1999
				p.PromoStart = time.Now().Add(-2 * time.Hour).UnixMilli()
				p.PromoEnd = time.Now().Add(-time.Hour).UnixMilli()
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return svc
			},
			order: domain.Order{
				BuyerID:         7,
				ShippingAddress: domain.Address{Recipient: "Jean", Street: "x", City: "Paris"},
			},
			lines: []domain.CartLine{{ProductID: 1, Quantity: 1}},
			after: func(t *testing.T, created domain.Order, _ *fakeProducer) {
				require.Len(t, created.Items, 1)
				assert.Equal(t, int64(2500), created.Items[0].UnitPriceSnapshot)
				assert.Equal(t, int64(2500), created.Total)
			},
		},
		{
			name: "购物车为空",
			mock: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			lines:   nil,
			wantErr: ErrInvalidCart,
		},
		{
			name: "购物车数量非法",
			mock: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			lines:   []domain.CartLine{{ProductID: 1, Quantity: 0}},
			wantErr: ErrInvalidCart,
		},
		{
			name: "购物车商品重复",
			mock: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			lines: []domain.CartLine{
				{ProductID: 1, Quantity: 1},
				{ProductID: 1, Quantity: 2},
			},
			wantErr: ErrInvalidCart,
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(99)).
					Return(product.Product{}, product.ErrProductNotFound)
				return svc
			},
			lines:   []domain.CartLine{{ProductID: 99, Quantity: 1}},
			wantErr: ErrProductUnavailable,
		},
		{
			name: "商品已下架",
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				p := onShelf(1, 2500, 10)
				p.Status = product.StatusOffShelf
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return svc
			},
			lines:   []domain.CartLine{{ProductID: 1, Quantity: 1}},
			wantErr: ErrProductUnavailable,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			producer := &fakeProducer{}
			svc := NewService(newFakeRepository(), tc.mock(ctrl), producer)
			created, err := svc.CreateOrder(context.Background(), tc.order, tc.lines)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.after != nil {
				tc.after(t, created, producer)
			}
		})
	}
}

func TestService_SetStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		before  domain.Status
		to      domain.Status
		wantErr error
		want    domain.Status
	}{
		{
			name:   "待处理到已确认",
			before: domain.StatusPending,
			to:     domain.StatusConfirmed,
			want:   domain.StatusConfirmed,
		},
		{
			name:   "备货中到已发货",
			before: domain.StatusPreparing,
			to:     domain.StatusShipped,
			want:   domain.StatusShipped,
		},
		{
			name:    "待处理不能直接送达",
			before:  domain.StatusPending,
			to:      domain.StatusDelivered,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "已送达是终态",
			before:  domain.StatusDelivered,
			to:      domain.StatusConfirmed,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "未知状态",
			before:  domain.StatusPending,
			to:      domain.Status(42),
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newFakeRepository()
			created, err := repo.CreateOrder(context.Background(), domain.Order{
				BuyerID: 7,
				Status:  tc.before,
			})
			require.NoError(t, err)

			svc := NewService(repo, productmocks.NewMockService(ctrl), &fakeProducer{})
			err = svc.SetStatus(context.Background(), created.ID, tc.to)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				got, err := repo.FindByID(context.Background(), created.ID)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got.Status)
				if tc.want == domain.StatusShipped {
					assert.Positive(t, got.ShippedAt)
				}
			}
		})
	}
}

func TestService_SetPaymentStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newFakeRepository()
	created, err := repo.CreateOrder(context.Background(), domain.Order{
		BuyerID:       7,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	svc := NewService(repo, productmocks.NewMockService(ctrl), &fakeProducer{})

	// 待支付只能到已支付或支付失败
	err = svc.SetPaymentStatus(context.Background(), created.ID, domain.PaymentStatusRefunded)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.SetPaymentStatus(context.Background(), created.ID, domain.PaymentStatusPaid))
	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)
	assert.Positive(t, got.PaidAt)

	require.NoError(t, svc.SetPaymentStatus(context.Background(), created.ID, domain.PaymentStatusRefunded))
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newFakeRepository()
	created, err := repo.CreateOrder(context.Background(), domain.Order{
		BuyerID:   7,
		Status:    domain.StatusConfirmed,
		AdminNote: "appel client le 12/03",
	})
	require.NoError(t, err)

	producer := &fakeProducer{}
	svc := NewService(repo, productmocks.NewMockService(ctrl), producer)
	require.NoError(t, svc.Cancel(context.Background(), created.ID, "rupture de stock"))

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	// 原因按行追加, 不覆盖已有备注
	assert.True(t, strings.HasSuffix(got.AdminNote, "Annulée: rupture de stock"))
	assert.Contains(t, got.AdminNote, "appel client le 12/03")
	require.Len(t, producer.events, 1)
	assert.Equal(t, event.ActionCancelled, producer.events[0].Action)

	// 已取消订单不能再取消
	err = svc.Cancel(context.Background(), created.ID, "encore")
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestService_CancelByBuyer(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newFakeRepository()
	created, err := repo.CreateOrder(context.Background(), domain.Order{
		BuyerID: 7,
		Status:  domain.StatusConfirmed,
	})
	require.NoError(t, err)

	svc := NewService(repo, productmocks.NewMockService(ctrl), &fakeProducer{})

	// 已确认的订单买家不可自行取消
	err = svc.CancelByBuyer(context.Background(), 7, created.SN, "changement d'avis")
	assert.ErrorIs(t, err, ErrNotCancellable)

	// 不是自己的订单
	err = svc.CancelByBuyer(context.Background(), 8, created.SN, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
