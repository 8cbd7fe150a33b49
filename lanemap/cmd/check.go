package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/lanemap/mapdata"
)

// ErrCheckFailed is returned when a document has blank or duplicated ids.
var ErrCheckFailed = errors.New("document has id problems")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report entities with blank or duplicated ids.",
		Long: "`check FILE` reports the problems without fixing them. " +
			"Blank ids under the holder are fixed by `backfill`, duplicates " +
			"by `rename`. Entities outside the holder are never backfilled; " +
			"their blank ids are listed as warnings and do not fail the check.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(args[0])
			if err != nil {
				return err
			}
			defer s.close()

			w := cmd.OutOrStdout()
			problems := 0

			holder := s.editor.Document().HolderNode()

			for _, cat := range s.editor.Categories() {
				inHolder := make(map[mapdata.Entity]bool)
				if holder != nil {
					for _, e := range holder.EntitiesOf(cat) {
						inHolder[e] = true
					}
				}

				for _, e := range s.editor.Document().Entities(cat) {
					if !mapdata.IsBlankID(e.ID()) {
						continue
					}

					if !inHolder[e] {
						fmt.Fprintf(w, "%s %s: blank id outside the holder\n",
							cat, s.nodeName(e))
						continue
					}

					fmt.Fprintf(w, "%s %s: blank id\n", cat, s.nodeName(e))
					problems++
				}

				for _, d := range s.editor.Duplicates(cat) {
					names := make([]string, 0, len(d.Entities))
					for _, e := range d.Entities {
						names = append(names, s.nodeName(e))
					}

					fmt.Fprintf(w, "%s %s: used by %s\n",
						cat, d.ID, strings.Join(names, ", "))
					problems++
				}
			}

			if problems > 0 {
				return errors.Wrapf(ErrCheckFailed, "%d problems", problems)
			}

			fmt.Fprintln(w, "OK")

			return nil
		},
	}
}
