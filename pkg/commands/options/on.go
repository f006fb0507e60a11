package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/entry"
)

const layoutISO = "2006-01-02"

// OnOptions selects a single civil day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Report a single date, example: --on="2024-02-28". Defaults to today.`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, entry.Civil())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RangeOptions selects an inclusive [from, to] date range. Both ends are
// required once either is given.
type RangeOptions struct {
	FromString string
	ToString   string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.FromString, "from", "",
		`Range start date, example: --from="2024-01-01".`)
	cmd.Flags().StringVar(&o.ToString, "to", "",
		`Range end date, inclusive, example: --to="2024-03-31".`)
}

func (o *RangeOptions) GetRange() (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if o.FromString != "" {
		t, err := time.ParseInLocation(layoutISO, o.FromString, entry.Civil())
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if o.ToString != "" {
		t, err := time.ParseInLocation(layoutISO, o.ToString, entry.Civil())
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
