// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the process logs.
type Options struct {
	Level string // zerolog level name, e.g. "debug", "info"
	File  string // rotating log file; empty logs to Stderr
	Env   string // "DEV" switches to the human readable console writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the global logger and returns a closer for any file sink.
func Setup(opts Options) (io.Closer, error) {
	level := zerolog.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, errors.Wrapf(err, "[logging Setup] invalid level %q", opts.Level)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	w, closer := Writer(opts)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return closer, nil
}

// Writer picks the sink for the given options.
func Writer(opts Options) (io.Writer, io.Closer) {
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		return rotating, rotating
	}
	if strings.EqualFold(opts.Env, "DEV") {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, nopCloser{}
	}
	return os.Stderr, nopCloser{}
}
