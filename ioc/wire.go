//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mall/internal/inventory"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/ecodeclub/mall/internal/statistics"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl", "Svc"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		inventory.InitModule,
		wire.FieldsOf(new(*inventory.Module), "AdminHdl"),
		statistics.InitModule,
		wire.FieldsOf(new(*statistics.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
