//go:build wireinject

package ioc

import (
	"github.com/dpickhq/dpick/internal/developer"
	"github.com/dpickhq/dpick/internal/project"
	"github.com/dpickhq/dpick/internal/settings"
	"github.com/dpickhq/dpick/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitEmailService,
		InitSMSClient,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		developer.InitModule,
		wire.FieldsOf(new(*developer.Module), "Hdl"),
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl"),
		settings.InitModule,
		wire.FieldsOf(new(*settings.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
