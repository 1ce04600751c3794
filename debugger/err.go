package debugger

import (
	"errors"

	"github.com/ezrec/gbcore/translate"
)

var f = translate.From

var (
	// Debugger errors
	ErrConditionResult = errors.New(f("condition did not produce a value"))
	ErrQuit            = errors.New(f("quit requested"))
)

// ErrCondition reports a breakpoint expression that failed to evaluate.
type ErrCondition struct {
	Expr string
	Err  error
}

func (err ErrCondition) Error() string {
	return f("condition %q: %v", err.Expr, err.Err)
}

func (err ErrCondition) Unwrap() error {
	return err.Err
}
