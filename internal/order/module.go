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

package order

import (
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/order/internal/web"
)

type (
	Handler       = web.Handler
	AdminHandler  = web.AdminHandler
	Service       = service.Service
	Order         = domain.Order
	OrderItem     = domain.OrderItem
	CartLine      = domain.CartLine
	Address       = domain.Address
	Status        = domain.Status
	PaymentStatus = domain.PaymentStatus
	PaymentMode   = domain.PaymentMode
)

const (
	StatusPending   = domain.StatusPending
	StatusConfirmed = domain.StatusConfirmed
	StatusPreparing = domain.StatusPreparing
	StatusShipped   = domain.StatusShipped
	StatusDelivered = domain.StatusDelivered
	StatusCancelled = domain.StatusCancelled

	PaymentStatusPending  = domain.PaymentStatusPending
	PaymentStatusPaid     = domain.PaymentStatusPaid
	PaymentStatusRefunded = domain.PaymentStatusRefunded
	PaymentStatusFailed   = domain.PaymentStatusFailed
)

var (
	ErrOrderNotFound = service.ErrOrderNotFound
	ErrInvalidCart   = service.ErrInvalidCart
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
