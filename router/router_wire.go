//go:build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	v1 "github.com/traPtitech/avatars/router/v1"
	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
)

func newRouter(am avatar.Manager, p imaging.Processor, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		newEcho,
		provideV1Config,
		wire.Struct(new(v1.Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
