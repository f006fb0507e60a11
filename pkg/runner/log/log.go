package log

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
)

type Log struct {
	Service *app.Service
	Mood    mood.Mood
	Note    string
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}

	e, err := n.Service.Log(ctx, n.Mood, n.Note)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Mood logged")
	pp.Entry(e)
	return nil
}
