package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nikki/pkg/commands/options"
	"tableflip.dev/nikki/pkg/runner/journal"
)

func addDiary(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Work with the diary",
		Example: `
nikki diary add slept well --category="日常"
nikki diary get --on="2026-8-29"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDiaryAdd(cmd)
	addDiaryGet(cmd)
	addDiaryEdit(cmd)
	addDiaryRemove(cmd)
	addDiaryCategories(cmd)

	topLevel.AddCommand(cmd)
}

func addDiaryAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add CONTENT",
		Short: "Write a diary entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			category := co.Category
			if category == "" {
				if cats := s.Categories(); len(cats) > 0 {
					category = cats[0]
				}
			}
			r := journal.Add{
				On:       on,
				Category: category,
				Content:  strings.Join(args, " "),
				ShowID:   io.ShowID,
				Service:  s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addDiaryGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read diary entries for a day, a category, or everything",
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := journal.Get{
				On:       on,
				Category: co.Category,
				All:      co.All,
				ShowID:   io.ShowID,
				Service:  s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddAllArg(cmd, co)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addDiaryEdit(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "edit ID CONTENT",
		Short: "Rewrite a diary entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := journal.Edit{
				ID:       args[0],
				Content:  strings.Join(args[1:], " "),
				On:       on,
				Category: co.Category,
				Service:  s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDiaryRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm ID",
		Short:   "Remove a diary entry",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := journal.Remove{
				ID:      args[0],
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addDiaryCategories(topLevel *cobra.Command) {
	addCategory := ""
	removeCategory := ""

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List, add, or remove diary categories",
		Example: `
nikki diary categories
nikki diary categories --add="趣味"
nikki diary categories --remove="食事"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := journal.Categories{
				Add:     addCategory,
				Remove:  removeCategory,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&addCategory, "add", "",
		"Add a category.")
	cmd.Flags().StringVar(&removeCategory, "remove", "",
		"Remove a category.")

	topLevel.AddCommand(cmd)
}
