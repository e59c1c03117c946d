package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ro := &options.RuleOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task or a recurring habit",
		Example: `
nikki add write journal --daily
nikki add gym --weekly="mon,wed,fri"
nikki add dentist --on="2026-9-12"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := ro.GetRule()
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := add.Add{
				Title:   strings.Join(args, " "),
				Rule:    rule,
				On:      on,
				ShowID:  io.ShowID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddRuleArgs(cmd, ro)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
