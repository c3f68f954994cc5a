//go:build wireinject

package cmd

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/router"
	"github.com/traPtitech/avatars/service/avatar"
	"github.com/traPtitech/avatars/service/imaging"
	"github.com/traPtitech/avatars/utils/storage"
)

func newServer(fs storage.FileStorage, logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		avatar.NewManager,
		imaging.NewProcessor,
		router.Setup,
		provideAvatarConfig,
		provideImageProcessorConfig,
		provideRouterConfig,
		wire.Struct(new(Server), "*"),
	)
	return nil, nil
}
