package logger

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	setCallerFormatter()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	SetConsoleWriter()
}

func setCallerFormatter() {
	_, file, _, _ := runtime.Caller(0)
	prefix := path.Dir(path.Dir(file))
	if len(prefix) > 0 && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	zerolog.CallerMarshalFunc = func(file string, line int) string {
		if index := strings.Index(file, prefix); index > -1 {
			file = file[index+len(prefix):]
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
}

// SetLevel parses one of trace, debug, info, warn, error or disabled.
func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

func SetWriter(w io.Writer) {
	log = zerolog.New(w)
}

// doLog treats args as alternating key/value pairs. A trailing key without a
// value becomes the message.
func doLog(event *zerolog.Event, args []interface{}) {
	if event == nil {
		return
	}
	event.Timestamp()
	event.Caller(2)

	for i := 0; i < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			event.Interface(fmt.Sprintf("arg%d", i), args[i])
			i--
			continue
		}
		if i+1 == len(args) {
			event.Msg(k)
			return
		}
		switch v := args[i+1].(type) {
		case string:
			event.Str(k, v)
		case int:
			event.Int(k, v)
		case int64:
			event.Int64(k, v)
		case uint32:
			event.Uint32(k, v)
		case float64:
			event.Float64(k, v)
		case bool:
			event.Bool(k, v)
		case error:
			event.AnErr(k, v)
		case time.Duration:
			event.Str(k, v.String())
		default:
			event.Interface(k, v)
		}
	}
	event.Msg("")
}

func Debug(args ...interface{}) {
	doLog(log.Debug(), args)
}

func Info(args ...interface{}) {
	doLog(log.Info(), args)
}

func Warn(args ...interface{}) {
	doLog(log.Warn(), args)
}

func Error(err error, args ...interface{}) {
	doLog(log.Error().Err(err), args)
}
