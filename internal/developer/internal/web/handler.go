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
	"strconv"

	"github.com/dpickhq/dpick/internal/developer/internal/domain"
	"github.com/dpickhq/dpick/internal/developer/internal/errs"
	"github.com/dpickhq/dpick/internal/developer/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.DeveloperService
}

func NewHandler(svc service.DeveloperService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	devs := server.Group("/api/developers")
	devs.GET("", ginx.W(h.List))
	devs.POST("", ginx.B[DeveloperReq](h.Create))
	devs.GET("/:id", ginx.W(h.Detail))
	devs.PUT("/:id", ginx.B[DeveloperReq](h.Update))
	devs.DELETE("/:id", ginx.W(h.Delete))

	devs.GET("/:id/contacts", ginx.W(h.Contacts))
	devs.POST("/:id/contacts", ginx.B[ContactReq](h.AddContact))
	devs.GET("/:id/resumes", ginx.W(h.Resumes))
	devs.POST("/:id/resumes", ginx.B[ResumeReq](h.AddResume))

	server.PATCH("/api/resumes/:id/review", ginx.BS[ReviewReq](h.ReviewResume))
}

// List 花名册。过滤条件全在 query 上：
// keyword、tab、level（可重复）、type（可重复）、paymentDueSoon
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	f := domain.RosterFilter{
		Keyword: ctx.Context.Query("keyword"),
		Tab:     domain.Tab(ctx.Context.Query("tab")),
		Levels: slice.Map(ctx.QueryArray("level"), func(idx int, src string) domain.Level {
			return domain.Level(src)
		}),
		Types: slice.Map(ctx.QueryArray("type"), func(idx int, src string) domain.Type {
			return domain.Type(src)
		}),
		PaymentDueSoon: ctx.Context.Query("paymentDueSoon") == "true",
	}
	ds, err := h.svc.List(ctx, f)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ds, func(idx int, src domain.Developer) Developer {
			return newDeveloper(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	d, err := h.svc.Detail(ctx, id)
	if errors.Is(err, service.ErrDeveloperNotFound) {
		return ginx.Result{
			Code: errs.DeveloperNotFound.Code,
			Msg:  errs.DeveloperNotFound.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDeveloper(d),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req DeveloperReq) (ginx.Result, error) {
	d, err := h.svc.Create(ctx, req.toDomain(0))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDeveloper(d),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req DeveloperReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.Update(ctx, req.toDomain(id))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.Delete(ctx, id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Contacts(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	cs, err := h.svc.Contacts(ctx, id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(cs, func(idx int, src domain.Contact) Contact {
			return newContact(src)
		}),
	}, nil
}

func (h *Handler) AddContact(ctx *ginx.Context, req ContactReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	c, err := h.svc.AddContact(ctx, domain.Contact{
		DeveloperId: id,
		ContactDate: req.ContactDate,
		Memo:        req.Memo,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newContact(c),
	}, nil
}

func (h *Handler) Resumes(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	rs, err := h.svc.Resumes(ctx, id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rs, func(idx int, src domain.Resume) Resume {
			return newResume(src)
		}),
	}, nil
}

func (h *Handler) AddResume(ctx *ginx.Context, req ResumeReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	r, err := h.svc.AddResume(ctx, domain.Resume{
		DeveloperId: id,
		Title:       req.Title,
		FilePath:    req.FilePath,
		UploadDate:  req.UploadDate,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(r),
	}, nil
}

// ReviewResume 审阅人取当前登录用户
func (h *Handler) ReviewResume(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	r, err := h.svc.ReviewResume(ctx, id, domain.Review{
		Status:     domain.ReviewStatus(req.Status),
		Comments:   req.Comments,
		ReviewedBy: sess.Claims().Uid,
	})
	if errors.Is(err, service.ErrInvalidReviewStatus) {
		return ginx.Result{
			Code: errs.InvalidReviewStatus.Code,
			Msg:  errs.InvalidReviewStatus.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(r),
	}, nil
}
