package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the symbol legend",
		Example: `
nikki key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return output.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
