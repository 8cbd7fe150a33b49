package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/lanemap/mapdata"
)

func newRenameCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename FILE",
		Short: "Change the id of an entity.",
		Long: "`rename FILE --from OLD --to NEW` sets the id of the first " +
			"entity that has OLD. Uniqueness is not enforced. A warning is " +
			"logged when NEW is already in use.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("category")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			out, _ := cmd.Flags().GetString("out")

			s, err := a.openSession(args[0])
			if err != nil {
				return err
			}
			defer s.close()

			cat, err := s.category(name)
			if err != nil {
				return err
			}

			doc := s.editor.Document()

			matches := mapdata.EntitiesWithID(doc, cat, from)
			if len(matches) == 0 {
				return errors.Errorf("no %s has id %q", cat, from)
			}

			if len(mapdata.EntitiesWithID(doc, cat, to)) > 0 {
				a.logger.WithField("id", to).
					Warn("id is already in use, the document will have duplicates")
			}

			s.editor.RenameEntity(matches[0], to)

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n",
				s.nodeName(matches[0]), from, to)

			return s.save(out)
		},
	}

	cmd.Flags().StringP("category", "c", string(mapdata.CategoryLane),
		"Category of the entity")
	cmd.Flags().String("from", "", "Current id")
	cmd.Flags().String("to", "", "New id")
	cmd.Flags().StringP("out", "o", "",
		"Write the document to this file instead of overwriting FILE")

	for _, f := range []string{"from", "to"} {
		err := cmd.MarkFlagRequired(f)
		if err != nil {
			panic(err)
		}
	}

	return cmd
}
