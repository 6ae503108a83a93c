package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mailcheck/internal/config"
	"github.com/dropDatabas3/mailcheck/internal/email"
	"github.com/dropDatabas3/mailcheck/internal/http/services/mailing"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Ejecuta el probe verify → send una vez e imprime el resultado JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSend(cmd.Context(), cmd.OutOrStdout(), opts.cfg, nil)
		},
	}
}

// runSend imprime el mismo cuerpo que GET /test-email. Con factory == nil usa SMTP real.
func runSend(ctx context.Context, out io.Writer, cfg config.Config, factory email.Factory) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc := mailing.NewMailingService(mailing.Deps{Mail: cfg.Mail, Transport: factory})

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	resp, err := svc.SendTestEmail(ctx)
	if err != nil {
		if encErr := enc.Encode(mailing.Failure(err)); encErr != nil {
			return encErr
		}
		return errProbeFailed
	}
	return enc.Encode(resp)
}
