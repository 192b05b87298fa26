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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/pkg/ordersn"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound    = errors.New("订单不存在")
	ErrConcurrentUpdate = errors.New("订单已被并发修改")
)

type OrderDAO interface {
	// Create 在一个事务内分配订单号、逐项预留库存并落库订单及订单项
	// 任何一项库存不足都会整体回滚, 不会留下部分预留
	Create(ctx context.Context, o Order, items []OrderItem) (Order, error)
	// UpdateStatus 以 from 状态做乐观校验, 没有命中说明被并发修改
	// shippedAt/deliveredAt 为 0 表示本次流转不写对应时间
	UpdateStatus(ctx context.Context, orderID int64, from, to uint8, shippedAt, deliveredAt int64) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, from, to uint8, paidAt int64) error
	// Cancel 在一个事务内把订单从 from 置为已取消并逐项归还库存
	// 守卫条件同时充当幂等闸口: 重复取消命中 0 行, 不会二次归还
	Cancel(ctx context.Context, orderID int64, from uint8, adminNote string) error
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindByBuyerIDAndSN(ctx context.Context, buyerID int64, sn string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	// List 管理端分页查询, status 为 0 表示不过滤状态
	List(ctx context.Context, offset, limit int, status uint8) ([]Order, error)
	Count(ctx context.Context, status uint8) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
	sn *ordersn.Generator
}

func NewOrderGORMDAO(db *egorm.Component, sn *ordersn.Generator) OrderDAO {
	return &OrderGORMDAO{db: db, sn: sn}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (Order, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		now := time.Now().UnixMilli()

		period := d.sn.Period()
		seq, err := d.nextSeq(ctx, tx, period)
		if err != nil {
			return fmt.Errorf("分配订单号序号失败: %w", err)
		}
		o.SN = d.sn.Format(period, seq)

		ledger := inventory.NewTxLedger(tx)
		for i := range items {
			if err = ledger.Reserve(ctx, items[i].ProductId, items[i].Quantity); err != nil {
				return err
			}
		}

		o.Ctime, o.Utime = now, now
		if err = tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

// nextSeq 按周期递增持久化计数器, 递增与读取属于同一个事务,
// 经典的 MySQL 命名计数器写法: 首次插入得 1, 之后走
// ON DUPLICATE KEY UPDATE + LAST_INSERT_ID(expr) 原子加一
func (d *OrderGORMDAO) nextSeq(ctx context.Context, tx *egorm.Component, period int64) (int64, error) {
	res := tx.WithContext(ctx).Exec(
		"INSERT INTO `order_sn_seqs` (`period`, `seq`) VALUES (?, 1) "+
			"ON DUPLICATE KEY UPDATE `seq` = LAST_INSERT_ID(`seq` + 1)", period)
	if res.Error != nil {
		return 0, res.Error
	}
	// MySQL 约定: 插入新行影响 1 行, 走更新分支影响 2 行
	if res.RowsAffected == 1 {
		return 1, nil
	}
	var seq int64
	err := tx.WithContext(ctx).Raw("SELECT LAST_INSERT_ID()").Scan(&seq).Error
	return seq, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, orderID int64, from, to uint8, shippedAt, deliveredAt int64) error {
	vals := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if shippedAt > 0 {
		vals["shipped_at"] = shippedAt
	}
	if deliveredAt > 0 {
		vals["delivered_at"] = deliveredAt
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(vals)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", ErrConcurrentUpdate, orderID)
	}
	return nil
}

func (d *OrderGORMDAO) UpdatePaymentStatus(ctx context.Context, orderID int64, from, to uint8, paidAt int64) error {
	vals := map[string]any{
		"payment_status": to,
		"utime":          time.Now().UnixMilli(),
	}
	if paidAt > 0 {
		vals["paid_at"] = paidAt
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND payment_status = ?", orderID, from).
		Updates(vals)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", ErrConcurrentUpdate, orderID)
	}
	return nil
}

func (d *OrderGORMDAO) Cancel(ctx context.Context, orderID int64, from uint8, adminNote string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", orderID, from).
			Updates(map[string]any{
				"status":     domain.StatusCancelled.ToUint8(),
				"admin_note": adminNote,
				"utime":      time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id = %d", ErrConcurrentUpdate, orderID)
		}

		var items []OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}
		ledger := inventory.NewTxLedger(tx)
		for _, item := range items {
			if err := ledger.Release(ctx, item.ProductId, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrOrderNotFound
	}
	return res, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrOrderNotFound
	}
	return res, err
}

func (d *OrderGORMDAO) FindByBuyerIDAndSN(ctx context.Context, buyerID int64, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("buyer_id = ? AND sn = ?", buyerID, sn).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrOrderNotFound
	}
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Offset(offset).Limit(limit).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int, status uint8) ([]Order, error) {
	var res []Order
	query := d.db.WithContext(ctx)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.
		Offset(offset).Limit(limit).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var res int64
	query := d.db.WithContext(ctx).Model(&Order{})
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&res).Error
	return res, err
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单号, 格式 CMD-<年份>-<序号>"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`

	Status        uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:订单状态 1=待处理 2=已确认 3=备货中 4=已发货 5=已送达 6=已取消"`
	PaymentStatus uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_payment_status;comment:支付状态 1=待支付 2=已支付 3=已退款 4=支付失败"`
	PaymentMode   uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:支付方式 1=发货前支付 2=货到付款 3=银行卡 4=Paypal"`

	Subtotal    int64 `gorm:"not null;comment:商品小计;单位为分, 999表示9.99元"`
	ShippingFee int64 `gorm:"not null;default:0;comment:运费;单位为分"`
	Taxes       int64 `gorm:"not null;default:0;comment:税费;单位为分"`
	Discount    int64 `gorm:"not null;default:0;comment:折扣;单位为分"`
	Total       int64 `gorm:"not null;comment:应付总额;单位为分"`

	ShippingRecipient  string `gorm:"type:varchar(255);not null;comment:收件人"`
	ShippingPhone      string `gorm:"type:varchar(64);not null;default:'';comment:收件人电话"`
	ShippingStreet     string `gorm:"not null;comment:收货地址"`
	ShippingCity       string `gorm:"type:varchar(255);not null;comment:收货城市"`
	ShippingPostalCode string `gorm:"type:varchar(32);not null;comment:收货邮编"`
	ShippingCountry    string `gorm:"type:varchar(255);not null;default:'France';comment:收货国家"`

	BillingRecipient  string `gorm:"type:varchar(255);not null;default:'';comment:账单收件人"`
	BillingPhone      string `gorm:"type:varchar(64);not null;default:'';comment:账单电话"`
	BillingStreet     string `gorm:"not null;comment:账单地址"`
	BillingCity       string `gorm:"type:varchar(255);not null;default:'';comment:账单城市"`
	BillingPostalCode string `gorm:"type:varchar(32);not null;default:'';comment:账单邮编"`
	BillingCountry    string `gorm:"type:varchar(255);not null;default:'';comment:账单国家"`

	CustomerNote string `gorm:"not null;comment:客户备注"`
	AdminNote    string `gorm:"not null;comment:管理员备注, 取消原因等按行追加"`

	PaidAt      int64 `gorm:"not null;default:0;comment:支付时间,UTC Unix毫秒数,0表示未支付"`
	ShippedAt   int64 `gorm:"not null;default:0;comment:发货时间,UTC Unix毫秒数,0表示未发货"`
	DeliveredAt int64 `gorm:"not null;default:0;comment:送达时间,UTC Unix毫秒数,0表示未送达"`

	Ctime int64 `gorm:"index:idx_ctime"`
	Utime int64
}

type OrderItem struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId int64 `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	// 弱引用, 商品之后被修改或删除不影响历史订单项
	ProductId int64 `gorm:"not null;index:idx_product_id;comment:商品自增ID"`

	NameSnapshot      string `gorm:"type:varchar(255);not null;comment:下单时商品名称快照"`
	SKUSnapshot       string `gorm:"type:varchar(255);not null;comment:下单时商品SKU快照"`
	ImageSnapshot     string `gorm:"type:varchar(512);not null;default:'';comment:下单时商品首图快照"`
	UnitPriceSnapshot int64  `gorm:"not null;comment:下单时计费单价快照;单位为分"`

	Quantity int64 `gorm:"not null;comment:购买数量"`

	Ctime int64
	Utime int64
}

// OrderSNSeq 按周期(年份)持久化的订单号计数器
type OrderSNSeq struct {
	Period int64 `gorm:"primaryKey;comment:计数周期, UTC年份"`
	Seq    int64 `gorm:"not null;comment:当前序号"`
}

func (OrderSNSeq) TableName() string {
	return "order_sn_seqs"
}
