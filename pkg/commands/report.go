package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/report"
	"tableflip.dev/moodlog/pkg/store"
)

func addReport(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ro := &options.RangeOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "show aggregate mood counts",
		Example: `
moodlog report
moodlog report --on 2024-01-01
moodlog report --from 2024-01-01 --to 2024-03-31
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := store.Load(ctx, nil)
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			from, to, err := ro.GetRange()
			if err != nil {
				return err
			}

			s := report.Report{
				Service: &app.Service{Persistence: p},
				On:      on,
				From:    from,
				To:      to,
				JSON:    out.JSON,
			}
			err = s.Do(ctx)
			return out.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddRangeArgs(cmd, ro)
	options.AddOutputArg(cmd, out)

	topLevel.AddCommand(cmd)
}
