// Package latency simulates the response delay of a remote backend so callers
// treat every account and task operation as a blocking call.
package latency

import (
	"context"
	"time"
)

type Op string

const (
	OpCurrentSession Op = "current_session"
	OpRegister       Op = "register"
	OpLogin          Op = "login"
	OpLogout         Op = "logout"
	OpListTasks      Op = "list_tasks"
	OpCreateTask     Op = "create_task"
	OpEditTask       Op = "edit_task"
	OpDeleteTask     Op = "delete_task"
	OpAppendUpdate   Op = "append_update"
)

// Defaults are the per-operation delays of a remote backend, in wall time at scale 1.
var Defaults = map[Op]time.Duration{
	OpCurrentSession: 300 * time.Millisecond,
	OpRegister:       800 * time.Millisecond,
	OpLogin:          800 * time.Millisecond,
	OpLogout:         300 * time.Millisecond,
	OpListTasks:      600 * time.Millisecond,
	OpCreateTask:     500 * time.Millisecond,
	OpEditTask:       400 * time.Millisecond,
	OpDeleteTask:     400 * time.Millisecond,
	OpAppendUpdate:   500 * time.Millisecond,
}

type Simulator interface {
	Wait(ctx context.Context, op Op) error
}

// Table waits Delays[op] multiplied by Scale. Unknown ops do not wait.
type Table struct {
	Delays map[Op]time.Duration
	Scale  float64
}

func New(scale float64) Table {
	return Table{Delays: Defaults, Scale: scale}
}

func (t Table) Wait(ctx context.Context, op Op) error {
	d := time.Duration(float64(t.Delays[op]) * t.Scale)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None never waits.
type None struct{}

func (None) Wait(ctx context.Context, _ Op) error { return ctx.Err() }
