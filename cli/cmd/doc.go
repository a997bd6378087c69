// Package cmd implements the msdscript subcommands.
//
// Each command reads one program from a file or standard input, parses it
// strictly, and writes its result to standard output:
//
//	eval   interpret the program and print its value
//	fmt    print the program as canonical text, pretty text, JSON, YAML, or a tree
//	subst  replace a variable with an expression and print the result
//	repl   interactive read-eval-print loop
//	init   write the configuration file
//
// Tests replace standard input and output with [WithStdio].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
