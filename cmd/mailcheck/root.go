package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/observability/logger"
)

// errProbeFailed indica que el JSON de error ya se imprimió; sólo falta el exit 1.
var errProbeFailed = errors.New("probe failed")

type rootOptions struct {
	configPath string
	envFile    string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "mailcheck",
		Short:         "Servidor de diagnóstico de credenciales SMTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "archivo YAML de configuración (opcional)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "archivo .env a cargar antes de leer el entorno")

	root.AddCommand(newServeCmd(opts), newSendCmd(opts))
	return root
}

// load carga .env, la config y deja el logger listo.
func (o *rootOptions) load() error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.L().Warn("⚠️  no .env file found, continuing with system environment variables",
					logger.String("env_file", o.envFile))
			} else {
				return fmt.Errorf("load %s: %w", o.envFile, err)
			}
		}
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "mailcheck",
	})
	return nil
}
