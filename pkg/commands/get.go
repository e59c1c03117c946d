package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List the tasks occurring on a day",
		Example: `
nikki get
nikki get --on="2026-8-29"
nikki get --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := get.Get{
				On:      on,
				All:     all,
				ShowID:  io.ShowID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&all, "all", false,
		"List every task, archived included.")

	topLevel.AddCommand(cmd)
}
