package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sp301415/numtheory/classical"
	"github.com/sp301415/numtheory/euclid"
	"github.com/sp301415/numtheory/num"
	"github.com/sp301415/numtheory/prime"
	"github.com/sp301415/numtheory/sequence"
)

var (
	// ErrUsage is returned when a command is called with wrong arguments.
	ErrUsage = errors.New("usage error")
	// ErrUnknownCommand is returned when no command matches.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrDivisionByZero is returned when a modulus or divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

const (
	// maxSieveLimit bounds the bitset and prime list built by sieve.
	maxSieveLimit = 1 << 26
	// maxMultiplesBound bounds the slice built by multiples and summultiples.
	maxMultiplesBound = 1 << 24
)

// command is a single CLI subcommand.
type command struct {
	args string
	help string
	// nargs is the exact number of arguments, or the minimum if variadic is set.
	nargs    int
	variadic bool
	run      func(w io.Writer, args []string) error
}

var commands = map[string]command{
	"version": {
		help: "print the module version",
		run:  runVersion,
	},
	"modulus": {
		args: "a b", nargs: 2,
		help: "print (a mod b) + b, and the canonical residue in [0, b)",
		run:  runModulus,
	},
	"gcd": {
		args: "a b", nargs: 2,
		help: "print the greatest common divisor",
		run: binary(func(w io.Writer, a, b int64) error {
			_, err := fmt.Fprintln(w, euclid.GCD(a, b))
			return err
		}),
	},
	"lcm": {
		args: "a b", nargs: 2,
		help: "print the least common multiple",
		run: binary(func(w io.Writer, a, b int64) error {
			l, err := euclid.LCM(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, l)
			return err
		}),
	},
	"egcd": {
		args: "a b", nargs: 2,
		help: "print d x y with a*x + b*y = d",
		run: binary(func(w io.Writer, a, b int64) error {
			d, x, y := euclid.EGCD(a, b)
			_, err := fmt.Fprintln(w, d, x, y)
			return err
		}),
	},
	"inverse": {
		args: "a b", nargs: 2,
		help: "print the inverse of a modulo b",
		run: binary(func(w io.Writer, a, b int64) error {
			inv, err := euclid.MultiplicativeInverse(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, inv)
			return err
		}),
	},
	"factorial": {
		args: "n", nargs: 1,
		help: "print n!",
		run: unary(func(w io.Writer, n int64) error {
			f, err := num.Factorial(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, f)
			return err
		}),
	},
	"prime": {
		args: "n", nargs: 1,
		help: "print whether n is prime",
		run: unary(func(w io.Writer, n int64) error {
			_, err := fmt.Fprintln(w, prime.IsPrime(n))
			return err
		}),
	},
	"wilson": {
		args: "n", nargs: 1,
		help: "print whether n is prime, by Wilson's theorem",
		run: unary(func(w io.Writer, n int64) error {
			ok, err := prime.Wilson(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, ok)
			return err
		}),
	},
	"sieve": {
		args: "limit", nargs: 1,
		help: "print all primes up to limit",
		run: unary(func(w io.Writer, n int64) error {
			if n < 0 {
				return errors.Wrapf(num.ErrNegativeInput, "sieve(%d)", n)
			}
			if n > maxSieveLimit {
				return errors.Wrapf(ErrUsage, "sieve limit %d exceeds %d", n, maxSieveLimit)
			}
			return printSlice(w, prime.Sieve(uint(n)))
		}),
	},
	"factorize": {
		args: "n", nargs: 1,
		help: "print the prime factors of n",
		run: unary(func(w io.Writer, n int64) error {
			return printSlice(w, prime.Factorize(n))
		}),
	},
	"totient": {
		args: "n", nargs: 1,
		help: "print Euler's totient of n",
		run: unary(func(w io.Writer, n int64) error {
			_, err := fmt.Fprintln(w, prime.EulerTotientFactored(n))
			return err
		}),
	},
	"cf": {
		args: "a b", nargs: 2,
		help: "print the continued fraction expansion of a/b",
		run: binary(func(w io.Writer, a, b int64) error {
			if b == 0 {
				return errors.Wrapf(ErrDivisionByZero, "cf(%d, %d)", a, b)
			}
			return printSlice(w, euclid.ContinuedFraction(a, b))
		}),
	},
	"fib": {
		args: "n", nargs: 1,
		help: "print the n-th Fibonacci number",
		run: unary(func(w io.Writer, n int64) error {
			i, err := toIndex(n)
			if err != nil {
				return err
			}
			f, err := sequence.Fibonacci[int64](i)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, f)
			return err
		}),
	},
	"fibseq": {
		args: "n", nargs: 1,
		help: "print the Fibonacci numbers F(0) through F(n)",
		run: unary(func(w io.Writer, n int64) error {
			i, err := toIndex(n)
			if err != nil {
				return err
			}
			seq, err := sequence.FibonacciSequence[int64](i)
			if err != nil {
				return err
			}
			return printSlice(w, seq)
		}),
	},
	"multiples": {
		args: "bound factor...", nargs: 2, variadic: true,
		help: "print the multiples of any factor below bound",
		run: func(w io.Writer, args []string) error {
			bound, factors, err := parseBoundFactors(args)
			if err != nil {
				return err
			}
			return printSlice(w, sequence.Multiples(factors, bound))
		},
	},
	"summultiples": {
		args: "bound factor...", nargs: 2, variadic: true,
		help: "print the sum of the multiples of any factor below bound",
		run: func(w io.Writer, args []string) error {
			bound, factors, err := parseBoundFactors(args)
			if err != nil {
				return err
			}
			s, err := sequence.SumOfMultiples(factors, bound)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, s)
			return err
		},
	},
	"shift-encipher": {
		args: "key plaintext", nargs: 2,
		help: "encipher plaintext with a shift cipher, printing hex",
		run: func(w io.Writer, args []string) error {
			key, err := parseByte(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, hex.EncodeToString(classical.ShiftEncipher([]byte(args[1]), key)))
			return err
		},
	},
	"shift-decipher": {
		args: "key ciphertext-hex", nargs: 2,
		help: "decipher hex ciphertext with a shift cipher",
		run: func(w io.Writer, args []string) error {
			key, err := parseByte(args[0])
			if err != nil {
				return err
			}
			ciphertext, err := hex.DecodeString(args[1])
			if err != nil {
				return errors.Wrap(ErrUsage, err.Error())
			}
			_, err = fmt.Fprintln(w, string(classical.ShiftDecipher(ciphertext, key)))
			return err
		},
	},
	"affine-encipher": {
		args: "alpha beta plaintext", nargs: 3,
		help: "encipher plaintext with an affine cipher, printing hex",
		run: func(w io.Writer, args []string) error {
			c, err := parseAffine(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, hex.EncodeToString(c.Encipher([]byte(args[2]))))
			return err
		},
	},
	"affine-decipher": {
		args: "alpha beta ciphertext-hex", nargs: 3,
		help: "decipher hex ciphertext with an affine cipher",
		run: func(w io.Writer, args []string) error {
			c, err := parseAffine(args[0], args[1])
			if err != nil {
				return err
			}
			ciphertext, err := hex.DecodeString(args[2])
			if err != nil {
				return errors.Wrap(ErrUsage, err.Error())
			}
			_, err = fmt.Fprintln(w, string(c.Decipher(ciphertext)))
			return err
		},
	},
}

// runCommand looks up and runs the command name.
func runCommand(w io.Writer, log *logrus.Logger, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q", name)
	}

	if len(args) < cmd.nargs || (!cmd.variadic && len(args) != cmd.nargs) {
		return errors.Wrapf(ErrUsage, "%s %s", name, cmd.args)
	}

	log.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
	}).Debug("running command")

	if err := cmd.run(w, args); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	return nil
}

// printUsage writes the list of commands to w.
func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: numtheory [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(w, "  %-32s %s\n", strings.TrimSpace(name+" "+cmd.args), cmd.help)
	}
}

func runVersion(w io.Writer, _ []string) error {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	_, err := fmt.Fprintln(w, "numtheory", version)
	return err
}

func runModulus(w io.Writer, args []string) error {
	a, b, err := parsePair(args)
	if err != nil {
		return err
	}
	if b == 0 {
		return errors.Wrapf(ErrDivisionByZero, "modulus(%d, %d)", a, b)
	}
	_, err = fmt.Fprintln(w, num.Modulus(a, b), num.CanonicalModulus(a, b))
	return err
}

func unary(f func(w io.Writer, n int64) error) func(io.Writer, []string) error {
	return func(w io.Writer, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		return f(w, n)
	}
}

func binary(f func(w io.Writer, a, b int64) error) func(io.Writer, []string) error {
	return func(w io.Writer, args []string) error {
		a, b, err := parsePair(args)
		if err != nil {
			return err
		}
		return f(w, a, b)
	}
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUsage, "invalid integer %q", s)
	}
	return n, nil
}

func parsePair(args []string) (a, b int64, err error) {
	if a, err = parseInt(args[0]); err != nil {
		return
	}
	b, err = parseInt(args[1])
	return
}

func parseByte(s string) (byte, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrUsage, "invalid byte %q", s)
	}
	return byte(n), nil
}

func parseAffine(alpha, beta string) (*classical.AffineCipher, error) {
	a, err := parseByte(alpha)
	if err != nil {
		return nil, err
	}
	b, err := parseByte(beta)
	if err != nil {
		return nil, err
	}
	return classical.NewAffineCipher(a, b)
}

// toIndex converts n to an int without truncation.
func toIndex(n int64) (int, error) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, errors.Wrapf(ErrUsage, "index %d out of range", n)
	}
	return int(n), nil
}

func parseBoundFactors(args []string) (bound int64, factors []int64, err error) {
	if bound, err = parseInt(args[0]); err != nil {
		return
	}
	if bound > maxMultiplesBound {
		return 0, nil, errors.Wrapf(ErrUsage, "bound %d exceeds %d", bound, maxMultiplesBound)
	}
	factors = make([]int64, len(args)-1)
	for i, s := range args[1:] {
		if factors[i], err = parseInt(s); err != nil {
			return
		}
	}
	return
}

func printSlice[T any](w io.Writer, xs []T) error {
	s := make([]string, len(xs))
	for i, x := range xs {
		s[i] = fmt.Sprint(x)
	}
	_, err := fmt.Fprintln(w, strings.Join(s, " "))
	return err
}
