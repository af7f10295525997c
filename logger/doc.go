// Package logger is the public API of conlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: the configuration, the
// console handler, the notification bus and the clock are set once via
// New or the Builder and never modified. Each call only reads the
// stored configuration, so a Logger is safe for concurrent use without
// any locking on the call path.
//
// Every call goes through the same pipeline. Per-call options are
// layered over the stored configuration (last writer wins per field;
// Format and EnabledOutput are replaced wholesale). The message is
// sanitized, %{NAME} style placeholders are expanded, a styled line is
// written if the level is enabled for the console, and finally the
// listeners of the level are notified if it is enabled for events:
//
//	log := logger.New(logger.Config{
//	    SanitizeTokens: []logger.SanitizeToken{{Token: "hunter2", Replacement: "***"}},
//	})
//	log.Events().Subscribe(logger.ErrorLevel, func(msg, system string) {
//	    alert(system, msg)
//	})
//	log.Log("password %{RED}hunter2", logger.WithLevel(logger.ErrorLevel), logger.WithSystem("auth"))
//
// By default the console gets INFO, WARN and ERROR and every level is
// published. Nothing in the pipeline fails: unknown style names resolve
// to nothing and unknown placeholders are left in the text.
//
// The package initializes a default Logger writing to stdout. The
// package-level functions Log, Info, Errorf, etc. delegate to it.
package logger
