package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/avatars/service/imaging"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "serve",
		Short: "Serve avatars API",
		Run: func(_ *cobra.Command, _ []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("avatars %s (revision %s)", Version, Revision))

			// FileStorage
			logger.Info("checking file storage...")
			fs, err := c.getFileStorage(context.Background())
			if err != nil {
				logger.Fatal("failed to setup file storage", zap.Error(err))
			}
			logger.Info("file storage is ok", zap.String("type", c.Storage.Type))

			// サーバー作成
			server, err := newServer(fs, logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}
			logger.Info("rasterizer is ready", zap.String("rasterizer", server.Imaging.Name()))

			go func() {
				if err := server.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("avatars started")
			waitSIGINT()
			logger.Info("avatars shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("avatars shutdown")
		},
	}

	flags := cmd.Flags()
	flags.Int("port", 3000, "port number to listen")
	bindPFlag(flags, "port")

	return &cmd
}

type Server struct {
	L       *zap.Logger
	Router  *echo.Echo
	Imaging imaging.Processor
}

func (s *Server) Start(address string) error {
	return s.Router.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	return eg.Wait()
}
