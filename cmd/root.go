package cmd

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // pprof init
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/traPtitech/avatars/logging"
)

var (
	Version  string
	Revision string
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// rootコマンドはダミー。コマンドとしては使用しない
var rootCommand = &cobra.Command{
	Use: "avatars",
	// 全コマンド共通の前処理
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// enable pprof http handler
		if c.Pprof {
			go func() { _ = http.ListenAndServe("0.0.0.0:6060", nil) }()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCommand.AddCommand(
		serveCommand(),
		renderCommand(),
		confCommand(),
		versionCommand(),
		healthcheckCommand(),
	)

	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")

	flags.Bool("dev", false, "development mode")
	bindPFlag(flags, "dev")
	flags.Bool("pprof", false, "expose pprof http interface")
	bindPFlag(flags, "pprof")
}

func initConfig() {
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("AVATARS")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			log.Fatalf("failed to read config file: %v", err)
		}
	}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
}

// Execute コマンドを実行します
func Execute() error {
	return rootCommand.Execute()
}

func getLogger() *zap.Logger {
	logger, err := logging.New(logging.Config{
		ServiceName: "avatars",
		Version:     fmt.Sprintf("%s.%s", Version, Revision),
		Level:       c.LogLevel,
		Development: c.DevMode,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

// getCLILogger CLIコマンド用のロガー
func getCLILogger() *zap.Logger {
	logger, err := logging.New(logging.Config{Level: "info", Development: true})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func bindPFlag(flags *pflag.FlagSet, key string, flag ...string) {
	if len(flag) == 0 {
		flag = []string{key}
	}
	if err := viper.BindPFlag(key, flags.Lookup(flag[0])); err != nil {
		panic(err)
	}
}

func waitSIGINT() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}
