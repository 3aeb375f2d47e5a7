package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ib-77/monads/internal/config"
	"github.com/ib-77/monads/pkg/monads/try"
)

// FromConfig builds the logger described by conf. conf is expected to be
// validated already.
func FromConfig(conf config.Log, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.Level)
	if nil != err {
		panic("invalid logging level: " + conf.Level)
	}

	switch strings.ToLower(conf.Format) {
	case "json":
		return zerolog.
			New(out).
			With().
			Timestamp().
			Logger().
			Level(level)
	case "pretty":
		return zerolog.
			New(zerolog.ConsoleWriter{ //nolint:exhaustruct
				Out:          out,
				TimeFormat:   time.RFC3339,
				TimeLocation: time.UTC,
			}).
			With().
			Timestamp().
			Logger().
			Level(level)
	default:
		panic("invalid logging format: " + conf.Format)
	}
}

func NewDefault(out io.Writer) zerolog.Logger {
	return FromConfig(config.Log{Level: "info", Format: "pretty"}, out)
}

// Frames renders the stack of a captured panic.
func Frames(frames []try.Frame) *zerolog.Array {
	arr := zerolog.Arr()
	for _, f := range frames {
		arr.Dict(zerolog.Dict().
			Int("line", f.Line).
			Str("file", f.File).
			Str("function", f.Function),
		)
	}
	return arr
}

// Failure adds the fields describing err to e. Panics captured by try get
// their correlation id and stack attached.
func Failure(e *zerolog.Event, err error) *zerolog.Event {
	e = e.Err(err)
	if perr, ok := try.AsPanic(err).Unpack(); ok {
		e = e.
			Str("panic_id", perr.ID.String()).
			Array("stack", Frames(perr.Frames))
	}
	return e
}
