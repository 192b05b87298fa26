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

// ProductDetailReq 商品详情
type ProductDetailReq struct {
	ID  int64  `json:"id,omitempty"`
	SKU string `json:"sku,omitempty"`
}

type ProductDetailResp struct {
	Product Product `json:"product"`
}

// ListProductsReq 分页查询商品
type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

// SaveProductReq 新建或更新商品, ID 为 0 表示新建
type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveProductResp struct {
	ID int64 `json:"id"`
}

// ProductStatusReq 上架/下架
type ProductStatusReq struct {
	ID int64 `json:"id"`
}

type Product struct {
	ID             int64    `json:"id"`
	SKU            string   `json:"sku"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Brand          string   `json:"brand,omitempty"`
	Images         []string `json:"images,omitempty"`
	Price          int64    `json:"price"`
	PromoPrice     int64    `json:"promoPrice,omitempty"`
	PromoStart     int64    `json:"promoStart,omitempty"`
	PromoEnd       int64    `json:"promoEnd,omitempty"`
	EffectivePrice int64    `json:"effectivePrice"`
	Stock          int64    `json:"stock"`
	StockStatus    uint8    `json:"stockStatus"`
	Status         uint8    `json:"status"`
}
