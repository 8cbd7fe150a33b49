package cmd

import (
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/lanemap/monitoring"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a document for inspection in the browser.",
		Long: "`serve FILE` backfills the document in memory and serves it " +
			"until interrupted. The file is never written.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			open, _ := cmd.Flags().GetBool("open")

			s, err := a.openSession(args[0])
			if err != nil {
				return err
			}
			defer s.close()

			_, err = s.editor.OnDocumentLoaded(cmd.Context())
			if err != nil {
				return err
			}

			url, err := monitoring.NewMonitor(s.editor).
				WithLogger(a.logger).
				WithPortNumber(a.cfg.GetInt(keyMonitorPort)).
				StartServer()
			if err != nil {
				return err
			}

			if open {
				err = browser.OpenURL(url)
				if err != nil {
					a.logger.WithError(err).Warn("cannot open the browser")
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			<-ctx.Done()

			return nil
		},
	}

	cmd.Flags().IntP("port", "p", 0,
		"Port of the monitor. A random port is used when not set")
	cmd.Flags().Bool("open", false, "Open the monitor in the browser")
	a.mustBind(keyMonitorPort, cmd.Flags().Lookup("port"))

	return cmd
}
