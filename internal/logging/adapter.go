package logging

import (
	"fmt"

	"github.com/rs/zerolog"

	"motion-controller-rig/internal/rig"
)

var _ rig.Logger = (*Adapter)(nil)

// Adapter writes rig diagnostics through a zerolog.Logger. Key-value pairs
// become event fields; error values are written with zerolog's error
// marshalling and a dangling key is dropped.
type Adapter struct {
	logger zerolog.Logger
}

func NewAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// With returns an adapter whose events all carry keysAndValues, e.g. the
// controller id and hand when several controllers share one output.
func (l *Adapter) With(keysAndValues ...any) *Adapter {
	ctx := l.logger.With()
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		ctx = ctx.Interface(keyOf(keysAndValues[i]), keysAndValues[i+1])
	}
	return &Adapter{logger: ctx.Logger()}
}

func (l *Adapter) Debug(msg string, keysAndValues ...any) {
	emit(l.logger.Debug(), msg, keysAndValues)
}

func (l *Adapter) Info(msg string, keysAndValues ...any) {
	emit(l.logger.Info(), msg, keysAndValues)
}

func (l *Adapter) Warn(msg string, keysAndValues ...any) {
	emit(l.logger.Warn(), msg, keysAndValues)
}

func (l *Adapter) Error(msg string, keysAndValues ...any) {
	emit(l.logger.Error(), msg, keysAndValues)
}

func emit(e *zerolog.Event, msg string, keysAndValues []any) {
	if e == nil {
		return
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := keyOf(keysAndValues[i])
		switch v := keysAndValues[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case string:
			e = e.Str(key, v)
		case int:
			e = e.Int(key, v)
		case float64:
			e = e.Float64(key, v)
		case bool:
			e = e.Bool(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(msg)
}

func keyOf(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
