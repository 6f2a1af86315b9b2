package main

import (
	"context"
	"os"

	"github.com/Abraxas-365/hirematch/internal/config"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/spf13/cobra"
)

const app = "hirematch"

var (
	cfgFile string
	debug   bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "hirematch parses resumes and recommends matching jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is hirematch.yaml in . or ./config)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

// loadConfig reads the configuration and applies its logger settings
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Log.Logx()
	if debug {
		logCfg.Level = logx.LevelDebug
	}
	logx.Configure(logCfg)
	return cfg, nil
}

func main() {
	defer logx.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logx.Errorf("%s: %v", app, err)
		_ = logx.Sync()
		os.Exit(1)
	}
}
