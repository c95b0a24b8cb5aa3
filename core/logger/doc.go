// Package logger provides a structured logging facility based on Zap.
//
// Level "debug" builds a development logger; any other level builds a
// production logger at that level. Format "console" gives coloured,
// human-readable output without stack traces, "json" gives one JSON object
// per entry.
//
// Each command invocation tags its logger with a run id through WithRunID so
// the entries of one export can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Export started")
package logger
