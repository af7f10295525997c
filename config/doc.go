// Package config builds a logger.Config from a TOML file, environment
// variables and dotenv files.
//
// A file may set any subset of the options; absent keys stay unset and
// take the logger's defaults:
//
//	show_time = ["en-GB", "", "Europe/Berlin"]   # or true, false, "literal"
//	template_literal_formats = true
//
//	[enabled_output]
//	log = ["INFO", "WARN", "ERROR"]               # or "ALL"
//	events = "ALL"
//
//	[format]
//	divider = "DIM"
//	system = ["BRIGHT", "WHITE"]
//
//	[format.levels]                                # or levels = "GREEN" for all levels
//	ERROR = ["BGRED", "WHITE"]
//	ALL = "BRIGHT"
//
//	[[sanitize_tokens]]
//	token = "hunter2"
//	replacement = "***"
//
// The environment overrides the file:
//
//	CONLOG_LOG_LEVELS="INFO,ERROR"   # ALL, NONE or a comma separated list
//	CONLOG_EVENT_LEVELS="ALL"
//	CONLOG_SHOW_TIME="ISO"           # true, false, literal:TEXT or comma separated params
//	CONLOG_TEMPLATES="false"
package config
