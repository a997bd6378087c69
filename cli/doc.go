// Package cli contains the command line interface for msdscript.
//
// # Usage
//
//	msdscript [flags] [FILE|-]              evaluate a program (default)
//	msdscript eval --bind x=3 prog.msd      evaluate with x bound to 3
//	msdscript fmt [pretty|print|json|yaml|ast] [FILE|-]
//	msdscript subst NAME REPLACEMENT [FILE|-]
//	msdscript repl
//	msdscript init [--force]
//
// # Configuration
//
// Flag defaults may be set in <UserConfigDir>/msdscript/config.yaml, which
// "msdscript init" writes from the current flag values. Keys name flags
// without dashes; nested mappings join their keys with '-'.
//
//	log-level: debug
//	log:
//	  format: json
//	eval:
//	  max-depth: 5000
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//   - --[no-]log-pretty: colorize text output
//
// Trace level shows each parse and evaluation step.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profiling mode (cpu, heap, allocs, ...)
//   - --pprof-dir: output directory (default <UserCacheDir>/msdscript/pprof)
package cli
