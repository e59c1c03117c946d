package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	undo := false
	clear := false

	cmd := &cobra.Command{
		Use:     "done ID",
		Short:   "Mark a task done for a day",
		Aliases: []string{"complete"},
		Example: `
nikki done 1b9d6bcd
nikki done 1b9d6bcd --on="2026-8-28"
nikki done 1b9d6bcd --undo
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
			r := done.Done{
				ID:      args[0],
				On:      on,
				Undo:    undo,
				Clear:   clear,
				ShowID:  io.ShowID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&undo, "undo", false,
		"Mark the task not done instead.")
	cmd.Flags().BoolVar(&clear, "clear", false,
		"Drop the record for that day entirely.")

	topLevel.AddCommand(cmd)
}
