package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/filter"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/report"
)

type Report struct {
	Service *app.Service

	// On selects single-day mode. From/To select range mode; both ends are
	// required, a half-open range is an error rather than a partial filter.
	On   *time.Time
	From *time.Time
	To   *time.Time

	JSON bool
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}

	history, err := n.Service.History(ctx)
	if err != nil {
		return err
	}

	var counts []report.Count
	title := ""
	switch {
	case n.On != nil:
		day := filter.Day(history, *n.On)
		counts = report.ByMood(day)
		title = fmt.Sprintf("Mood distribution for %s", n.On.Format("2006-01-02"))
	case n.From != nil || n.To != nil:
		if n.From == nil || n.To == nil {
			return filter.ErrIncompleteRange
		}
		ranged, err := filter.Range(history, *n.From, *n.To)
		if err != nil {
			return err
		}
		g := report.GranularityFor(*n.From, *n.To)
		counts = report.Aggregate(ranged, g)
		title = fmt.Sprintf("Mood distribution by %s", g)
	default:
		now := time.Now()
		day := filter.Day(history, now)
		counts = report.ByMood(day)
		title = "Mood distribution for today"
	}

	if n.JSON {
		out := make([]map[string]interface{}, 0, len(counts))
		for _, c := range counts {
			row := map[string]interface{}{
				"mood":  c.Mood.String(),
				"count": c.N,
			}
			if !c.Bucket.Start.IsZero() {
				row["period"] = c.Bucket.Label()
			}
			out = append(out, row)
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(title, total(counts))
	pp.Counts(counts...)
	return nil
}

func total(counts []report.Count) int {
	n := 0
	for _, c := range counts {
		n += c.N
	}
	return n
}
