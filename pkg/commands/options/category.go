package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions
type CategoryOptions struct {
	Category string
	All      bool
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the diary category.")
}

func AddAllArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every entry regardless of date.")
}
