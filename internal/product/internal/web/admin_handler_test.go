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

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	productmocks "github.com/ecodeclub/mall/internal/product/mocks"
	"github.com/ecodeclub/mall/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Save(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		reqBody  string
		wantCode int
		wantResp test.Result[SaveProductResp]
	}{
		{
			name: "新建成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.Product{
					SKU:   "KB-0001",
					Name:  "Clavier mécanique",
					Price: 2500,
					Stock: 10,
				}).Return(int64(1), nil)
				return svc
			},
			reqBody:  `{"product": {"sku": "KB-0001", "name": "Clavier mécanique", "price": 2500, "stock": 10}}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[SaveProductResp]{
				Data: SaveProductResp{ID: 1},
			},
		},
		{
			name: "SKU为空",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			reqBody:  `{"product": {"name": "Clavier mécanique", "price": 2500}}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[SaveProductResp]{Code: 502003, Msg: "入参非法"},
		},
		{
			name: "价格非正数",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			reqBody:  `{"product": {"sku": "KB-0001", "name": "Clavier mécanique", "price": 0}}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[SaveProductResp]{Code: 502003, Msg: "入参非法"},
		},
		{
			name: "促销窗口倒置",
			mock: func(ctrl *gomock.Controller) service.Service {
				return productmocks.NewMockService(ctrl)
			},
			reqBody:  `{"product": {"sku": "KB-0001", "name": "Clavier mécanique", "price": 2500, "promoPrice": 1999, "promoStart": 2000, "promoEnd": 1000}}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[SaveProductResp]{Code: 502003, Msg: "入参非法"},
		},
		{
			name: "更新成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Update(gomock.Any(), domain.Product{
					ID:    3,
					SKU:   "KB-0001",
					Name:  "Clavier mécanique",
					Price: 2900,
					Stock: 10,
				}).Return(nil)
				return svc
			},
			reqBody:  `{"product": {"id": 3, "sku": "KB-0001", "name": "Clavier mécanique", "price": 2900, "stock": 10}}`,
			wantCode: http.StatusOK,
			wantResp: test.Result[SaveProductResp]{
				Data: SaveProductResp{ID: 3},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			NewAdminHandler(tc.mock(ctrl)).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/product/save",
				bytes.NewBufferString(tc.reqBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[SaveProductResp]()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
