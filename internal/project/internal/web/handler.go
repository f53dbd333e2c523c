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

	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/dpickhq/dpick/internal/project/internal/errs"
	"github.com/dpickhq/dpick/internal/project/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.ProjectService
}

func NewHandler(svc service.ProjectService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	prjs := server.Group("/api/projects")
	prjs.GET("", ginx.W(h.List))
	prjs.POST("", ginx.B[ProjectReq](h.Create))
	prjs.GET("/status/:status", ginx.W(h.ListByStatus))
	prjs.GET("/:id", ginx.W(h.Detail))
	prjs.PUT("/:id", ginx.B[ProjectReq](h.Update))
	prjs.DELETE("/:id", ginx.W(h.Delete))

	prjs.POST("/:id/team", ginx.B[TeamReq](h.Assign))
	prjs.DELETE("/:id/team/:developerId", ginx.W(h.Remove))

	prjs.GET("/:id/announcements", ginx.W(h.Announcements))
	prjs.POST("/:id/announcements", ginx.B[AnnouncementReq](h.Announce))
}

// List 项目列表。过滤条件全在 query 上：keyword、tab、type（可重复）
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	f := domain.ProjectFilter{
		Keyword: ctx.Context.Query("keyword"),
		Tab:     domain.Tab(ctx.Context.Query("tab")),
		Types: slice.Map(ctx.QueryArray("type"), func(idx int, src string) domain.Type {
			return domain.Type(src)
		}),
	}
	return h.list(ctx, f)
}

// ListByStatus 按状态过滤的旧口，等价于 tab=:status
func (h *Handler) ListByStatus(ctx *ginx.Context) (ginx.Result, error) {
	return h.list(ctx, domain.ProjectFilter{
		Tab: domain.Tab(ctx.Context.Param("status")),
	})
}

func (h *Handler) list(ctx *ginx.Context, f domain.ProjectFilter) (ginx.Result, error) {
	ps, err := h.svc.List(ctx, f)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ps, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	p, err := h.svc.Detail(ctx, id)
	if errors.Is(err, service.ErrProjectNotFound) {
		return ginx.Result{
			Code: errs.ProjectNotFound.Code,
			Msg:  errs.ProjectNotFound.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProject(p),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req ProjectReq) (ginx.Result, error) {
	p, err := h.svc.Create(ctx, req.toDomain(0))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProject(p),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req ProjectReq) (ginx.Result, error) {
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

func (h *Handler) Assign(ctx *ginx.Context, req TeamReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	p, err := h.svc.Assign(ctx, id, req.ids())
	if errors.Is(err, service.ErrEmptySelection) {
		return ginx.Result{
			Code: errs.EmptySelection.Code,
			Msg:  errs.EmptySelection.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "개발자가 프로젝트에 추가되었습니다.",
		Data: newProject(p),
	}, nil
}

func (h *Handler) Remove(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	devId, err := strconv.ParseInt(ctx.Context.Param("developerId"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	p, err := h.svc.Remove(ctx, id, devId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "개발자가 프로젝트에서 제거되었습니다.",
		Data: newProject(p),
	}, nil
}

func (h *Handler) Announcements(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	as, err := h.svc.Announcements(ctx, id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(as, func(idx int, src domain.Announcement) Announcement {
			return newAnnouncement(src)
		}),
	}, nil
}

func (h *Handler) Announce(ctx *ginx.Context, req AnnouncementReq) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	a, err := h.svc.Announce(ctx, domain.Announcement{
		ProjectId:  id,
		Channel:    domain.Channel(req.Channel),
		Content:    req.Content,
		Recipients: req.Recipients,
	})
	switch {
	case errors.Is(err, service.ErrInvalidChannel):
		return ginx.Result{
			Code: errs.InvalidChannel.Code,
			Msg:  errs.InvalidChannel.Msg,
		}, err
	case errors.Is(err, service.ErrProjectNotFound):
		return ginx.Result{
			Code: errs.ProjectNotFound.Code,
			Msg:  errs.ProjectNotFound.Msg,
		}, err
	case err != nil:
		return ginx.Result{
			Code: errs.AnnounceSendFail.Code,
			Msg:  errs.AnnounceSendFail.Msg,
		}, err
	}
	return ginx.Result{
		Data: newAnnouncement(a),
	}, nil
}
