package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/lanemap/datarecording"
)

func newHistoryCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history DB",
		Short: "List the id assignments stored in a recording.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, _ := cmd.Flags().GetString("document")

			_, err := os.Stat(args[0])
			if err != nil {
				return errors.Wrap(err, "opening recording")
			}

			reader := datarecording.NewReader(args[0])
			defer reader.Close()

			entries, err := datarecording.ReadAssignments(
				cmd.Context(), reader, document)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tDOCUMENT\tCATEGORY\tSOURCE\tOLD\tNEW")

			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Time, e.Document, e.Category, e.Source, e.OldID, e.NewID)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringP("document", "d", "",
		"Only list the assignments of this document")

	return cmd
}
