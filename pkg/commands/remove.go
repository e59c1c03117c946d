package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	archive := false

	cmd := &cobra.Command{
		Use:     "rm ID",
		Short:   "Remove a task, or hide one occurrence of it",
		Aliases: []string{"remove", "delete"},
		Example: `
nikki rm 1b9d6bcd
nikki rm 1b9d6bcd --archive
nikki rm 1b9d6bcd --on="2026-8-29"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				ID:      args[0],
				On:      on,
				Archive: archive,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&archive, "archive", false,
		"Archive instead of delete, keeping the completion history.")

	topLevel.AddCommand(cmd)
}
