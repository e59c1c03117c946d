package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/nikki/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nikki",
		Short: base.Wrap80("Task, habit and diary tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&output.JSON, "json", false,
		"Output errors as JSON.")
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addEdit(topLevel)
	addDiary(topLevel)
	addReport(topLevel)
	addStreak(topLevel)
	addCal(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}
