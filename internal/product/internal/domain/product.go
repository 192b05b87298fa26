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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

type StockStatus uint8

func (s StockStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StockStatusOut       StockStatus = 1 // 缺货
	StockStatusLow       StockStatus = 2 // 库存紧张
	StockStatusAvailable StockStatus = 3 // 有货
)

// lowStockThreshold 库存小于等于该值时视为库存紧张
const lowStockThreshold = 5

type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Brand       string
	Images      []string

	// Price 为基准价, PromoPrice 为促销价, 单位为分
	// PromoStart/PromoEnd 为促销生效区间, UTC Unix毫秒数, 0 表示未设置
	Price      int64
	PromoPrice int64
	PromoStart int64
	PromoEnd   int64

	Stock  int64
	Status Status

	Ctime int64
	Utime int64
}

// OnPromotion 判断 now 时刻促销是否生效, now 为 UTC Unix毫秒数
func (p Product) OnPromotion(now int64) bool {
	if p.PromoPrice <= 0 || p.PromoStart <= 0 || p.PromoEnd <= 0 {
		return false
	}
	return now >= p.PromoStart && now <= p.PromoEnd
}

// EffectivePrice 计费价格, 促销生效时取促销价, 否则取基准价
// 始终由持久化字段推导, 不单独存储
func (p Product) EffectivePrice(now int64) int64 {
	if p.OnPromotion(now) {
		return p.PromoPrice
	}
	return p.Price
}

func (p Product) StockStatus() StockStatus {
	switch {
	case p.Stock <= 0:
		return StockStatusOut
	case p.Stock <= lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusAvailable
	}
}
