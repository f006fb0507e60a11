package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/runner/ui"
	"tableflip.dev/moodlog/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the mood logging dashboard",
		Example: `
moodlog ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := store.Load(ctx, nil)
			if err != nil {
				return err
			}
			i := ui.UI{Service: &app.Service{Persistence: p}}
			return i.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
