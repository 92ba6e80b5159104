package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SebastiaanKlippert/go-calendar/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: "serve answers GET /v1/jdn/:jdn, /v1/date/:year/:month/:day, /v1/ordinal/:year/:ordinal,\n" +
			"/v1/month/:year/:month, /v1/year/:year and /v1/gap with JSON. The calendar and reformation\n" +
			"query parameters override the configured calendar.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(a.cal, a.logger).Start(ctx, a.cfg.Listen)
		},
	}
	cmd.Flags().String("listen", "", "address to listen on (default localhost:8080)")
	_ = a.v.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	return cmd
}
