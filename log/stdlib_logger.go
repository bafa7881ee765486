// SPDX-License-Identifier: ice License 1.0
//go:build !zerolog

package log

import (
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/icepin/config"
)

// .
var (
	//nolint:gochecknoglobals // Immutable singleton.
	appCfg cfg
)

//nolint:gochecknoinits // log is global, so it's initialization can be done in init
func init() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix | log.LUTC | log.Llongfile | log.Lmicroseconds)
	config.MustLoadFromKey("logger", &appCfg)
}

func Error(err error, fields ...any) {
	if err == nil {
		return
	}
	printf("ERROR", err.Error(), fields...)
}

func Debug(msg string, fields ...any) {
	if rank(appCfg.Level) > rank(levelDebug) {
		return
	}
	printf("DEBUG", msg, fields...)
}

func Info(msg string, fields ...any) {
	if rank(appCfg.Level) > rank(levelInfo) {
		return
	}
	printf("INFO", msg, fields...)
}

func Warn(msg string, fields ...any) {
	if rank(appCfg.Level) > rank(levelWarn) {
		return
	}
	printf("WARN", msg, fields...)
}

func Fatal(anything any, fields ...any) {
	if anything == nil {
		return
	}
	defer os.Exit(1)
	Error(asError(anything), fields...)
}

func Panic(anything any, fields ...any) {
	if anything == nil {
		return
	}
	defer func() {
		panic(anything)
	}()
	Error(asError(anything), fields...)
}

func Level() string {
	return appCfg.Level
}

func rank(level string) int {
	switch strings.ToLower(level) {
	case levelDebug:
		return 0
	case levelInfo, "":
		return 1
	case levelWarn:
		return 2
	default:
		return 3
	}
}

func asError(anything any) error {
	switch obj := anything.(type) {
	case error:
		return obj
	case string:
		return errors.New(obj)
	default:
		return errors.Errorf("%#v", obj)
	}
}

func printf(level, msg string, fields ...any) {
	placeholders := make([]string, 0, len(fields)+1)
	for range len(fields) + 1 {
		placeholders = append(placeholders, "%v")
	}
	args := make([]any, 0, len(fields)+1)
	args = append(args, msg)
	args = append(args, fields...)

	log.Printf(level+":"+strings.Join(placeholders, " "), args...)
}
