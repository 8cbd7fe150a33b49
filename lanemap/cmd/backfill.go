package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackfillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backfill FILE",
		Short: "Give every entity without an id a fresh one.",
		Long: "`backfill FILE` runs the pass that runs when a document is " +
			"opened. Existing ids are kept. The document is written back " +
			"unless --dry-run is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			s, err := a.openSession(args[0])
			if err != nil {
				return err
			}
			defer s.close()

			report, err := s.editor.OnDocumentLoaded(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, asg := range report.Assignments {
				fmt.Fprintf(w, "%s: %s\n", s.nodeName(asg.Entity), asg.NewID)
			}

			fmt.Fprintf(w, "Scanned %d entities, assigned %d ids.\n",
				report.Scanned, report.NumAssigned())

			if dryRun || (report.NumAssigned() == 0 && out == "") {
				return nil
			}

			return s.save(out)
		},
	}

	cmd.Flags().StringP("out", "o", "",
		"Write the document to this file instead of overwriting FILE")
	cmd.Flags().Bool("dry-run", false, "Report the ids without saving")

	return cmd
}
