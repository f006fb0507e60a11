package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/log"
	"tableflip.dev/moodlog/pkg/store"
)

func addLog(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "log <mood> [note...]",
		Short: "log a mood right now",
		Long:  "Log a mood with an optional note.\n\nMoods: " + options.MoodUsage() + "\n",
		Example: `
moodlog log 😊
moodlog log happy
moodlog log angry build broke again
`,
		Args: func(cmd *cobra.Command, args []string) error {
			return mo.ParseArgs(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := store.Load(ctx, nil)
			if err != nil {
				return err
			}

			s := log.Log{
				Service: &app.Service{Persistence: p},
				Mood:    mo.Mood,
				Note:    mo.Note,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
