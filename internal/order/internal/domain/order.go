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

package domain

type PaymentMode uint8

func (m PaymentMode) ToUint8() uint8 {
	return uint8(m)
}

func (m PaymentMode) IsValid() bool {
	return m >= PaymentModeBeforeDelivery && m <= PaymentModePaypal
}

const (
	PaymentModeBeforeDelivery PaymentMode = 1 // 货到付款前支付
	PaymentModeAfterDelivery  PaymentMode = 2 // 货到付款
	PaymentModeCard           PaymentMode = 3 // 银行卡
	PaymentModePaypal         PaymentMode = 4 // Paypal
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64

	Status        Status
	PaymentStatus PaymentStatus
	PaymentMode   PaymentMode

	// 金额单位为分, Total = Subtotal + ShippingFee + Taxes - Discount
	Subtotal    int64
	ShippingFee int64
	Taxes       int64
	Discount    int64
	Total       int64

	ShippingAddress Address
	BillingAddress  Address

	CustomerNote string
	AdminNote    string

	// UTC Unix毫秒数, 0 表示尚未发生, 每个时间最多被写入一次
	PaidAt      int64
	ShippedAt   int64
	DeliveredAt int64

	Items []OrderItem

	Ctime int64
	Utime int64
}

// CalculateTotal 按订单项重算小计和总价
// 订单项变更和创建订单时都必须调用, 保证金额不变量成立
func (o *Order) CalculateTotal() {
	var subtotal int64
	for _, item := range o.Items {
		subtotal += item.LineTotal()
	}
	o.Subtotal = subtotal
	o.Total = subtotal + o.ShippingFee + o.Taxes - o.Discount
}

type Address struct {
	Recipient  string
	Phone      string
	Street     string
	City       string
	PostalCode string
	Country    string
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// OrderItem 归属于订单, 商品信息在下单时刻快照,
// 后续商品目录的变更不影响历史订单
type OrderItem struct {
	OrderID   int64
	ProductID int64

	NameSnapshot      string
	SKUSnapshot       string
	ImageSnapshot     string
	UnitPriceSnapshot int64

	Quantity int64
}

// LineTotal 行金额, 由快照单价推导, 不单独存储
func (i OrderItem) LineTotal() int64 {
	return i.UnitPriceSnapshot * i.Quantity
}

// CartLine 结算请求中的一行, 只引用商品ID
type CartLine struct {
	ProductID int64
	Quantity  int64
}
