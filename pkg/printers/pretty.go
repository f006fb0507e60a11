package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/report"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entry prints one logged entry.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	t := color.New()
	_, _ = t.Printf("%s\n\n", e.String())
}

// Counts renders aggregate rows as an aligned table. Counts without a bucket
// (single-day mode) omit the period column.
func (pp *PrettyPrint) Counts(counts ...report.Count) {
	if len(counts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bucketed := !counts[0].Bucket.Start.IsZero()

	table := uitable.New()
	table.MaxColWidth = 40
	if bucketed {
		table.AddRow("PERIOD", "MOOD", "COUNT")
	} else {
		table.AddRow("MOOD", "COUNT")
	}
	for _, c := range counts {
		m := moodCell(c.Mood)
		if bucketed {
			table.AddRow(c.Bucket.Label(), m, c.N)
		} else {
			table.AddRow(m, c.N)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

func moodCell(m mood.Mood) string {
	g := m.Glyph()
	c := color.New(moodAttr(m))
	return fmt.Sprintf("%s %s", g.Symbol, c.Sprint(g.Meaning))
}

// moodAttr maps mood hex colors onto the nearest terminal palette entries.
func moodAttr(m mood.Mood) color.Attribute {
	switch m {
	case mood.Celebrating:
		return color.FgGreen
	case mood.Happy:
		return color.FgHiGreen
	case mood.Unsure:
		return color.FgHiRed
	case mood.Angry:
		return color.FgRed
	}
	return color.FgWhite
}
