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

// CreateOrderReq 创建订单, RequestID 由前端生成用于幂等去重
type CreateOrderReq struct {
	RequestID       string     `json:"requestID"`
	Lines           []CartLine `json:"lines"`
	PaymentMode     uint8      `json:"paymentMode"`
	ShippingFee     int64      `json:"shippingFee"`
	Taxes           int64      `json:"taxes"`
	Discount        int64      `json:"discount"`
	ShippingAddress Address    `json:"shippingAddress"`
	BillingAddress  Address    `json:"billingAddress"`
	CustomerNote    string     `json:"customerNote,omitempty"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
	Total   int64  `json:"total"`
}

type CartLine struct {
	ProductID int64 `json:"productID"`
	Quantity  int64 `json:"quantity"`
}

type Address struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// ListOrdersReq 分页查询订单, Status 仅管理端生效, 0 表示全部
type ListOrdersReq struct {
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
	Status uint8 `json:"status,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 买家按订单号查详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

// CancelOrderReq 买家取消自己的待处理订单
type CancelOrderReq struct {
	OrderSN string `json:"orderSN"`
	Reason  string `json:"reason,omitempty"`
}

// OrderDetailReq 管理端按ID查详情
type OrderDetailReq struct {
	ID int64 `json:"id"`
}

// SetStatusReq 管理端推进订单状态
type SetStatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

// SetPaymentStatusReq 管理端标记支付状态
type SetPaymentStatusReq struct {
	ID            int64 `json:"id"`
	PaymentStatus uint8 `json:"paymentStatus"`
}

// AdminCancelOrderReq 管理端取消订单
type AdminCancelOrderReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason,omitempty"`
}

type Order struct {
	ID              int64       `json:"id,omitempty"`
	SN              string      `json:"sn"`
	BuyerID         int64       `json:"buyerID,omitempty"`
	Status          uint8       `json:"status"`
	PaymentStatus   uint8       `json:"paymentStatus"`
	PaymentMode     uint8       `json:"paymentMode"`
	Subtotal        int64       `json:"subtotal"`
	ShippingFee     int64       `json:"shippingFee"`
	Taxes           int64       `json:"taxes"`
	Discount        int64       `json:"discount"`
	Total           int64       `json:"total"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	CustomerNote    string      `json:"customerNote,omitempty"`
	AdminNote       string      `json:"adminNote,omitempty"`
	PaidAt          int64       `json:"paidAt,omitempty"`
	ShippedAt       int64       `json:"shippedAt,omitempty"`
	DeliveredAt     int64       `json:"deliveredAt,omitempty"`
	Items           []OrderItem `json:"items"`
	Ctime           int64       `json:"ctime"`
	Utime           int64       `json:"utime"`
}

type OrderItem struct {
	ProductID int64  `json:"productID"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}
