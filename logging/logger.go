// SPDX-License-Identifier: MIT

package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger for app on stderr using the process-wide
// configuration. Configure is applied with the runtime profile if nothing
// configured it earlier.
func New(app string) zerolog.Logger {
	ConfigureRuntime()

	return NewWithConfig(os.Stderr, app, Current())
}

// NewWithConfig returns a console logger for app writing to out.
func NewWithConfig(out io.Writer, app string, cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(output).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Str("app", app).Logger()
}
