package orders

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) (string, error)

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onDispatchable, onCanceled actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			"created":   onDispatchable,
			"confirmed": onDispatchable,
			"ready":     onDispatchable,
			"cancelled": onCanceled,
			"canceled":  onCanceled,
			"deleted":   onCanceled,
		},
	}
}

func normalize(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	fn, ok := f.byStatus[normalize(status)]
	return fn, ok
}
