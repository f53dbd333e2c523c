// Copyright 2024 dpickhq
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
	"errors"
	"fmt"

	"github.com/dpickhq/dpick/internal/settings/internal/domain"
	"github.com/dpickhq/dpick/internal/settings/internal/errs"
	"github.com/dpickhq/dpick/internal/settings/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.SettingsService
}

func NewHandler(svc service.SettingsService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	st := server.Group("/api/settings")
	st.GET("/api", ginx.W(h.ApiSettings))
	st.PUT("/api", ginx.B[ApiSettingReq](h.SaveApiSettings))
	st.POST("/test-email", ginx.B[TestEmailReq](h.TestEmail))
	st.POST("/test-sms", ginx.B[TestSMSReq](h.TestSMS))

	st.GET("/billing", ginx.W(h.Billing))
	st.PUT("/billing", ginx.B[BillingReq](h.SaveBilling))
	st.POST("/billing/charge", ginx.B[ChargeReq](h.Charge))
	st.GET("/billing/transactions", ginx.W(h.Transactions))
}

func (h *Handler) ApiSettings(ctx *ginx.Context) (ginx.Result, error) {
	s, err := h.svc.ApiSettings(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApiSetting(s),
	}, nil
}

func (h *Handler) SaveApiSettings(ctx *ginx.Context, req ApiSettingReq) (ginx.Result, error) {
	s, err := h.svc.SaveApiSettings(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApiSetting(s),
	}, nil
}

func (h *Handler) TestEmail(ctx *ginx.Context, req TestEmailReq) (ginx.Result, error) {
	err := h.svc.TestEmail(ctx, req.To, req.Subject, req.Content)
	if err != nil {
		return ginx.Result{
			Code: errs.TestSendFail.Code,
			Msg:  errs.TestSendFail.Msg,
		}, err
	}
	return ginx.Result{
		Msg: fmt.Sprintf("이메일이 %s로 전송되었습니다.", req.To),
	}, nil
}

func (h *Handler) TestSMS(ctx *ginx.Context, req TestSMSReq) (ginx.Result, error) {
	err := h.svc.TestSMS(ctx, req.To, req.Message)
	if err != nil {
		return ginx.Result{
			Code: errs.TestSendFail.Code,
			Msg:  errs.TestSendFail.Msg,
		}, err
	}
	return ginx.Result{
		Msg: fmt.Sprintf("SMS가 %s로 전송되었습니다.", req.To),
	}, nil
}

func (h *Handler) Billing(ctx *ginx.Context) (ginx.Result, error) {
	b, err := h.svc.Billing(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newBillingInfo(b),
	}, nil
}

func (h *Handler) SaveBilling(ctx *ginx.Context, req BillingReq) (ginx.Result, error) {
	b, err := h.svc.SaveBilling(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newBillingInfo(b),
	}, nil
}

func (h *Handler) Charge(ctx *ginx.Context, req ChargeReq) (ginx.Result, error) {
	t, err := h.svc.Charge(ctx, req.Amount, req.Description)
	if errors.Is(err, service.ErrInvalidAmount) {
		return ginx.Result{
			Code: errs.InvalidAmount.Code,
			Msg:  errs.InvalidAmount.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  fmt.Sprintf("%d원이 충전되었습니다.", req.Amount),
		Data: newTransaction(t),
	}, nil
}

func (h *Handler) Transactions(ctx *ginx.Context) (ginx.Result, error) {
	ts, err := h.svc.Transactions(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ts, func(idx int, src domain.Transaction) Transaction {
			return newTransaction(src)
		}),
	}, nil
}
