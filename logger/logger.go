// logger
/*
Copyright 2024 the herdCH4 authors

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package logger holds the process-wide zap logger for herdCH4.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OutputMode is "verbose" (human tables on stdout) or "model"
// (machine-readable lines only). Set once from the command line.
var OutputMode *string

var log *zap.Logger = zap.NewNop()

// Init builds the process logger. Verbose runs log at debug level with a
// console encoder; model runs log warnings and errors only.
func Init(mode string) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	if mode == "verbose" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	log = l.Named("herdCH4")
	return nil
}

// L returns the process logger. Safe to call before Init; returns a nop
// logger until Init has run.
func L() *zap.Logger {
	return log
}

// Verbose reports whether human-readable tables should be printed.
func Verbose() bool {
	return OutputMode != nil && *OutputMode == "verbose"
}
