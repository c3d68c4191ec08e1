// Command numtheory evaluates the number theory routines of this module
// from the command line, over 64-bit signed integers.
//
// Example:
//
//	numtheory gcd 1071 462
//	numtheory --log-level debug factorize 360
//	NUMTHEORY_LOG_FORMAT=json numtheory inverse 3 26
package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	fs.Usage = func() {
		printUsage(stderr)
		fs.PrintDefaults()
	}

	cfg, rest, err := readConfig(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		printUsage(stderr)
		return 2
	}

	log, err := newLogger(cfg.Log, stderr)
	if err != nil {
		io.WriteString(stderr, err.Error()+"\n")
		return 2
	}

	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	if err := runCommand(stdout, log, rest[0], rest[1:]); err != nil {
		log.WithError(err).Error("command failed")
		if errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand) {
			printUsage(stderr)
			return 2
		}
		return 1
	}
	return 0
}
