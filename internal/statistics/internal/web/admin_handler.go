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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mall/internal/statistics/internal/domain"
	"github.com/ecodeclub/mall/internal/statistics/internal/errs"
	"github.com/ecodeclub/mall/internal/statistics/internal/service"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/statistics")
	g.POST("/summary", ginx.B[SummaryReq](h.Summary))
}

func (h *AdminHandler) Summary(ctx *ginx.Context, req SummaryReq) (ginx.Result, error) {
	summary, err := h.svc.Summary(ctx.Request.Context(), req.WindowDays)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toSummaryVO(summary),
	}, nil
}

func toSummaryVO(s domain.Summary) Summary {
	return Summary{
		WindowDays:        s.WindowDays,
		TotalOrders:       s.TotalOrders,
		ConfirmedOrders:   s.ConfirmedOrders,
		DeliveredOrders:   s.DeliveredOrders,
		CancelledOrders:   s.CancelledOrders,
		PaidOrders:        s.PaidOrders,
		Revenue:           s.Revenue,
		AverageOrderValue: s.AverageOrderValue,
	}
}
