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

	"github.com/dpickhq/dpick/internal/user/internal/domain"
	"github.com/dpickhq/dpick/internal/user/internal/errs"
	"github.com/dpickhq/dpick/internal/user/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	auth.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	auth.POST("/logout", ginx.S(h.Logout))
	auth.GET("/me", ginx.S(h.Me))

	// 账号管理，admin 专用
	users := server.Group("/api/auth/users")
	users.GET("", ginx.S(h.List))
	users.POST("", ginx.BS[UserReq](h.Create))
	users.PUT("/:id", ginx.BS[UserReq](h.Update))
	users.DELETE("/:id", ginx.S(h.Delete))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return ginx.Result{
			Code: errs.InvalidCredentials.Code,
			Msg:  errs.InvalidCredentials.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "성공적으로 로그아웃되었습니다.",
	}, nil
}

func (h *Handler) Me(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if res, ok := h.requireAdmin(sess); !ok {
		return res, nil
	}
	us, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(us, func(idx int, src domain.User) Profile {
			return newProfile(src)
		}),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req UserReq, sess session.Session) (ginx.Result, error) {
	if res, ok := h.requireAdmin(sess); !ok {
		return res, nil
	}
	u, err := h.svc.Create(ctx, req.toDomain(0))
	switch {
	case errors.Is(err, service.ErrUserDuplicate):
		return ginx.Result{
			Code: errs.UserDuplicate.Code,
			Msg:  errs.UserDuplicate.Msg,
		}, err
	case errors.Is(err, service.ErrInvalidRole):
		return ginx.Result{
			Code: errs.InvalidRole.Code,
			Msg:  errs.InvalidRole.Msg,
		}, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UserReq, sess session.Session) (ginx.Result, error) {
	if res, ok := h.requireAdmin(sess); !ok {
		return res, nil
	}
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.Update(ctx, req.toDomain(id))
	if errors.Is(err, service.ErrInvalidRole) {
		return ginx.Result{
			Code: errs.InvalidRole.Code,
			Msg:  errs.InvalidRole.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if res, ok := h.requireAdmin(sess); !ok {
		return res, nil
	}
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

func (h *Handler) requireAdmin(sess session.Session) (ginx.Result, bool) {
	role := sess.Claims().Get("role").StringOrDefault("")
	if role != domain.RoleAdmin.String() {
		return ginx.Result{
			Code: errs.PermissionDenied.Code,
			Msg:  errs.PermissionDenied.Msg,
		}, false
	}
	return ginx.Result{}, true
}
