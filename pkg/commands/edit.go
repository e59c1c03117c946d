package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit ID TITLE",
		Short: "Rename a task",
		Example: `
nikki edit 1b9d6bcd water the plants
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := edit.Edit{
				ID:      args[0],
				Title:   strings.Join(args[1:], " "),
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
