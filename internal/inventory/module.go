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

package inventory

import (
	"github.com/ecodeclub/mall/internal/inventory/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/inventory/internal/service"
	"github.com/ecodeclub/mall/internal/inventory/internal/web"
	"github.com/ego-component/egorm"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Ledger       = dao.InventoryDAO

	InsufficientStockError = dao.InsufficientStockError
)

var (
	ErrInsufficientStock = dao.ErrInsufficientStock
	ErrProductNotFound   = dao.ErrProductNotFound
)

// NewTxLedger 在调用方的事务句柄上构造台账,
// 使预留/归还与调用方的其余写入同属一个事务
func NewTxLedger(tx *egorm.Component) Ledger {
	return dao.NewInventoryGORMDAO(tx)
}

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
}
