package test

import (
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// 测试不走 redis，登录态由各个用例提前塞进 gin ctx 的 "_session"
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct{}

// NewSession 用例自己造 memory session，这里永远用不上
func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	// 用例没塞登录态会直接 panic
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}
