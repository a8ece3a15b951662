package eff

import (
	"go.uber.org/zap"

	"github.com/ib-77/lazyv/pkg/val"
)

type logged[V any] struct {
	action IO[V]
	log    *zap.Logger
	name   string
}

func (l logged[V]) Run() val.Result[V] {
	res := l.action.Run()
	if res.IsSuccess() {
		l.log.Info("io run succeeded",
			zap.String("action", l.name),
			zap.String("result_id", res.Id().String()))
	} else {
		l.log.Warn("io run failed",
			zap.String("action", l.name),
			zap.String("result_id", res.Id().String()),
			zap.Error(res.Err()))
	}
	return res
}

// Logged wraps an IO so every Run outcome is logged under the given action
// name. Logging belongs to the collaborator layer only; value nodes never
// log.
func Logged[V any](name string, action IO[V], log *zap.Logger) IO[V] {
	return logged[V]{action: action, log: log, name: name}
}
