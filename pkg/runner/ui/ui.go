package ui

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/app"
	tuiapp "tableflip.dev/moodlog/pkg/tui/app"
)

type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not open ui, no service")
	}
	return tuiapp.Run(u.Service)
}
