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
	"errors"
	"time"

	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/event"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound    = dao.ErrOrderNotFound
	ErrConcurrentUpdate = dao.ErrConcurrentUpdate

	ErrInvalidCart        = errors.New("购物车参数非法")
	ErrProductUnavailable = errors.New("商品不存在或已下架")
	ErrInvalidStatus      = errors.New("未知的订单状态")
	ErrInvalidTransition  = errors.New("非法的状态流转")
	ErrNotCancellable     = errors.New("订单当前状态不可取消")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateOrder 按购物车行创建订单, 从商品模块取计费单价快照并在同一事务内扣减库存
	CreateOrder(ctx context.Context, order domain.Order, lines []domain.CartLine) (domain.Order, error)
	// SetStatus 管理员推进订单状态, 目标为已取消时走取消流程(含库存返还)
	SetStatus(ctx context.Context, orderID int64, to domain.Status) error
	SetPaymentStatus(ctx context.Context, orderID int64, to domain.PaymentStatus) error
	// Cancel 管理员取消订单, 原因按行追加到管理员备注
	Cancel(ctx context.Context, orderID int64, reason string) error
	// CancelByBuyer 买家仅能取消自己的待处理订单
	CancelByBuyer(ctx context.Context, buyerID int64, sn string, reason string) error
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindByBuyerIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error)
	// List 管理端分页查询, status 为 0 表示不过滤状态
	List(ctx context.Context, offset, limit int, status domain.Status) ([]domain.Order, int64, error)
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

type service struct {
	repo       repository.OrderRepository
	productSvc product.Service
	producer   event.OrderEventProducer
	logger     *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order, lines []domain.CartLine) (domain.Order, error) {
	if err := s.validateCart(lines); err != nil {
		return domain.Order{}, err
	}
	if !order.PaymentMode.IsValid() {
		order.PaymentMode = domain.PaymentModeBeforeDelivery
	}
	now := time.Now().UnixMilli()
	items, err := s.snapshotItems(ctx, now, lines)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items
	order.Status = domain.StatusPending
	order.PaymentStatus = domain.PaymentStatusPending
	if order.BillingAddress.IsZero() {
		order.BillingAddress = order.ShippingAddress
	}
	order.CalculateTotal()

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	s.produce(ctx, created, event.ActionCreated)
	return created, nil
}

func (s *service) validateCart(lines []domain.CartLine) error {
	if len(lines) == 0 {
		return ErrInvalidCart
	}
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return ErrInvalidCart
		}
		if _, ok := seen[line.ProductID]; ok {
			return ErrInvalidCart
		}
		seen[line.ProductID] = struct{}{}
	}
	return nil
}

// snapshotItems 以下单时刻的计费单价固化订单项, 之后商品调价不影响历史订单
func (s *service) snapshotItems(ctx context.Context, now int64, lines []domain.CartLine) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		p, err := s.productSvc.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				return nil, ErrProductUnavailable
			}
			return nil, err
		}
		if p.Status != product.StatusOnShelf {
			return nil, ErrProductUnavailable
		}
		var image string
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		items = append(items, domain.OrderItem{
			ProductID:         p.ID,
			NameSnapshot:      p.Name,
			SKUSnapshot:       p.SKU,
			ImageSnapshot:     image,
			UnitPriceSnapshot: p.EffectivePrice(now),
			Quantity:          line.Quantity,
		})
	}
	return items, nil
}

func (s *service) SetStatus(ctx context.Context, orderID int64, to domain.Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if to == domain.StatusCancelled {
		return s.Cancel(ctx, orderID, "")
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	var shippedAt, deliveredAt int64
	now := time.Now().UnixMilli()
	// 发货和送达时间只在首次进入对应状态时记录
	if to == domain.StatusShipped && order.ShippedAt == 0 {
		shippedAt = now
	}
	if to == domain.StatusDelivered && order.DeliveredAt == 0 {
		deliveredAt = now
	}
	err = s.repo.UpdateStatus(ctx, orderID, order.Status, to, shippedAt, deliveredAt)
	if err != nil {
		return err
	}
	order.Status = to
	s.produce(ctx, order, event.ActionStatusChanged)
	return nil
}

func (s *service) SetPaymentStatus(ctx context.Context, orderID int64, to domain.PaymentStatus) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.PaymentStatus.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	var paidAt int64
	if to == domain.PaymentStatusPaid && order.PaidAt == 0 {
		paidAt = time.Now().UnixMilli()
	}
	err = s.repo.UpdatePaymentStatus(ctx, orderID, order.PaymentStatus, to, paidAt)
	if err != nil {
		return err
	}
	order.PaymentStatus = to
	s.produce(ctx, order, event.ActionPaymentChange)
	return nil
}

func (s *service) Cancel(ctx context.Context, orderID int64, reason string) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	return s.cancel(ctx, order, reason)
}

func (s *service) CancelByBuyer(ctx context.Context, buyerID int64, sn string, reason string) error {
	order, err := s.repo.FindByBuyerIDAndSN(ctx, buyerID, sn)
	if err != nil {
		return err
	}
	// 买家侧只允许取消尚未被商家确认的订单
	if order.Status != domain.StatusPending {
		return ErrNotCancellable
	}
	return s.cancel(ctx, order, reason)
}

func (s *service) cancel(ctx context.Context, order domain.Order, reason string) error {
	if !order.Status.Cancellable() {
		return ErrNotCancellable
	}
	err := s.repo.Cancel(ctx, order.ID, order.Status, appendCancelReason(order.AdminNote, reason))
	if err != nil {
		return err
	}
	order.Status = domain.StatusCancelled
	s.produce(ctx, order, event.ActionCancelled)
	return nil
}

func appendCancelReason(note, reason string) string {
	line := "Annulée"
	if reason != "" {
		line = "Annulée: " + reason
	}
	if note == "" {
		return line
	}
	return note + "\n" + line
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) FindByBuyerIDAndSN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	return s.repo.FindByBuyerIDAndSN(ctx, buyerID, sn)
}

func (s *service) ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyerID(ctx, offset, limit, buyerID)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByBuyerID(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) List(ctx context.Context, offset, limit int, status domain.Status) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, offset, limit, status)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) produce(ctx context.Context, order domain.Order, action string) {
	evt := event.OrderEvent{
		OrderSN:       order.SN,
		BuyerID:       order.BuyerID,
		Action:        action,
		Status:        order.Status.ToUint8(),
		PaymentStatus: order.PaymentStatus.ToUint8(),
		Total:         order.Total,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", order.SN),
			elog.String("action", action))
	}
}
