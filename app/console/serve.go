package console

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/go-signup/app"
	fwapp "github.com/km-arc/go-signup/framework/app"
)

func serveCmd(envFiles *[]string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Serve the registration form on APP_PORT.

Routes:
  GET  /            registration page
  GET  /ws          live form session (websocket)
  POST /register    form post / JSON fallback
  GET  /api/fields  field descriptors
  GET  /metrics     Prometheus metrics
  GET  /healthz     liveness`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(app.Options{Options: fwapp.Options{EnvFiles: *envFiles}})
			if err != nil {
				return err
			}
			if port != "" {
				application.Config().App.Port = port
			}
			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default: APP_PORT)")

	return cmd
}
