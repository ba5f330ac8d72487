package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init reconfigures the global logger. Pretty output is for local
// development; the default is JSON lines.
func Init(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := os.Stdout
	if pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
			Level(lvl).With().Timestamp().Logger()
		return
	}
	log = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func Debug(msg string, kv ...any) { emit(log.Debug(), msg, kv) }
func Info(msg string, kv ...any)  { emit(log.Info(), msg, kv) }
func Warn(msg string, kv ...any)  { emit(log.Warn(), msg, kv) }
func Error(msg string, kv ...any) { emit(log.Error(), msg, kv) }

func Fatal(msg string, kv ...any) {
	emit(log.Fatal(), msg, kv)
}

// emit attaches variadic key-value pairs to the event. A trailing value
// without a key, or a bare error, is logged under "error".
func emit(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i < len(kv); i++ {
		if err, ok := kv[i].(error); ok {
			ev = ev.AnErr("error", err)
			continue
		}
		key, ok := kv[i].(string)
		if !ok || i+1 >= len(kv) {
			ev = ev.Interface("value", kv[i])
			continue
		}
		i++
		if err, ok := kv[i].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i])
	}
	ev.Msg(msg)
}
