// SPDX-License-Identifier: ice License 1.0

package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/ice-blockchain/quicbridge/config"
)

// .
var (
	//nolint:gochecknoglobals // we need only one log for the app, hence it is global
	logger *zerolog.Logger
)

//nolint:gochecknoinits // log is global, so it's initialization can be done in init
func init() {
	var appCfg cfg
	if err := config.LoadFromKey(applicationYAMLKey, &appCfg); err != nil && !errors.Is(err, config.ErrKeyNotFound) {
		panic(err)
	}
	if err := mergo.Merge(&appCfg, defaultCfg); err != nil {
		panic(errors.Wrap(err, "failed to apply logger defaults"))
	}
	isJSON := strings.EqualFold(appCfg.Encoder, jsonEncoder)
	setupLogger(isJSON, appCfg.Level)
}

func setupLogger(isJSON bool, level string) {
	zerolog.DisableSampling(true)
	zerolog.ErrorStackMarshaler = errorStackMarshaller //nolint:reassign // It is called by an init.
	zerolog.InterfaceMarshalFunc = json.Marshal
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Nanosecond
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var err error
	if logger, err = buildLogger(isJSON, level); err != nil {
		panic(errors.Wrap(err, "failed to build logger"))
	}
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger)
}

func buildLogger(isJSON bool, level string) (*zerolog.Logger, error) { //nolint:revive // Control coupling is intended here.
	var logWriter io.Writer = os.Stderr
	if !isJSON {
		logWriter = &zerolog.ConsoleWriter{
			Out:        logWriter,
			TimeFormat: time.RFC3339Nano,
			PartsOrder: []string{
				zerolog.LevelFieldName,
				zerolog.TimestampFieldName,
				zerolog.MessageFieldName,
			},
			PartsExclude: []string{zerolog.ErrorStackFieldName},
		}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid logger level %q", level)
	}
	lgr := zerolog.New(logWriter).With().Timestamp().Stack().Logger().Level(lvl)

	return &lgr, nil
}

func errorStackMarshaller(err error) any {
	frames, ok := pkgerrors.MarshalStack(err).([]map[string]string)
	if !ok || len(frames) <= stackFramesToSkip {
		return nil
	}
	stacks := make([]string, 0, len(frames)-stackFramesToSkip)
	for _, frame := range frames[:len(frames)-stackFramesToSkip] {
		stacks = append(stacks, fmt.Sprintf("%s:%s:%s",
			frame[pkgerrors.StackSourceFileName],
			frame[pkgerrors.StackSourceLineName],
			frame[pkgerrors.StackSourceFunctionName]))
	}

	return strings.Join(stacks, "<<")
}

func Error(err error, fields ...any) {
	if err == nil {
		return
	}
	send(logger.Err(err), "", fields)
}

func Debug(msg string, fields ...any) {
	send(logger.Debug(), msg, fields)
}

func Info(msg string, fields ...any) {
	send(logger.Info(), msg, fields)
}

func Warn(msg string, fields ...any) {
	send(logger.Warn(), msg, fields)
}

func Fatal(anything any, fields ...any) {
	if anything == nil {
		return
	}
	fatalEvent := logger.Fatal()
	switch obj := anything.(type) {
	case error:
		fatalEvent = fatalEvent.Err(obj)
	case string:
		send(fatalEvent, obj, fields)

		return
	default:
		fatalEvent = fatalEvent.Err(errors.Errorf("%#v", obj))
	}

	send(fatalEvent, "", fields)
}

func Panic(anything any, fields ...any) {
	if anything == nil {
		return
	}
	panicEvent := logger.Panic()
	switch obj := anything.(type) {
	case error:
		panicEvent = panicEvent.Err(obj)
	case string:
		panicEvent = panicEvent.Err(errors.New(obj))
	default:
		panicEvent = panicEvent.Err(errors.Errorf("%#v", obj))
	}

	send(panicEvent, "", fields)
}

func Level() string {
	return logger.GetLevel().String()
}

func send(event *zerolog.Event, msg string, fields []any) {
	if event == nil {
		return
	}
	if len(fields) > 0 {
		event = event.Fields(fields)
	}

	event.Msg(msg)
}
