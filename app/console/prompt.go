package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-signup/app"
	"github.com/km-arc/go-signup/app/registration"
	"github.com/km-arc/go-signup/app/tui"
	fwapp "github.com/km-arc/go-signup/framework/app"
	"github.com/km-arc/go-signup/framework/container"
	"github.com/km-arc/go-signup/framework/form"
)

func promptCmd(envFiles *[]string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the registration form in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, *envFiles, tui.NewSurveyDriver(os.Stdin, os.Stdout), nil)
		},
	}
	return cmd
}

// runPrompt runs one terminal session. A nil logs keeps the configured
// destination: LOG_FILE when set, stderr otherwise.
func runPrompt(cmd *cobra.Command, envFiles []string, driver tui.PromptDriver, logs io.Writer) error {
	application, err := app.New(app.Options{Options: fwapp.Options{EnvFiles: envFiles, LogOutput: logs}})
	if err != nil {
		return err
	}

	schema := container.Resolve[*registration.Schema](application.Container, "registration.schema")
	submit := container.Resolve[registration.SubmitFunc](application.Container, "registration.submit")

	var accepted *registration.FormValues
	f := registration.NewForm(schema, registration.Chain(submit, func(v registration.FormValues) {
		accepted = &v
	}), form.WithObserver(application.Metrics()))

	session, err := tui.NewSession(f, driver)
	if err != nil {
		return err
	}
	if err := session.Run(cmd.Context()); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
			return nil
		}
		return err
	}

	if accepted != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ registered %s <%s>\n", accepted.Name, accepted.Email)
	}
	return nil
}
