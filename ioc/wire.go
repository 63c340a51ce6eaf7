//go:build wireinject

package ioc

import (
	"github.com/dotting-labs/dotting/internal/ai"
	"github.com/dotting-labs/dotting/internal/compilation"
	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/dotting-labs/dotting/internal/printorder"
	"github.com/dotting-labs/dotting/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession, InitIDGenerator, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		interview.InitModule,
		order.InitModule,
		compilation.InitModule,
		printorder.InitModule,
		ai.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*interview.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "ExpireJob"),
		wire.FieldsOf(new(*compilation.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*printorder.Module), "AdminHdl"),
		wire.FieldsOf(new(*ai.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
