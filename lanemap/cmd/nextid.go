package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/lanemap/mapdata"
)

func newNextIDCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-id FILE",
		Short: "Print the id a new entity would receive.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("category")

			s, err := a.openSession(args[0])
			if err != nil {
				return err
			}
			defer s.close()

			cat, err := s.category(name)
			if err != nil {
				return err
			}

			id, err := s.editor.NextID(cat)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		},
	}

	cmd.Flags().StringP("category", "c", string(mapdata.CategoryLane),
		"Category of the entity")

	return cmd
}
