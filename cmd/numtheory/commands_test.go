package main

import (
	"bytes"
	"os"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sp301415/numtheory/num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOK(t *testing.T, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(args, &stdout, &stderr), stderr.String())
	return stdout.String()
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"modulus", "7", "3"}, "4 1\n"},
		{[]string{"modulus", "-7", "3"}, "2 2\n"},
		{[]string{"gcd", "1071", "462"}, "21\n"},
		{[]string{"lcm", "4", "6"}, "12\n"},
		{[]string{"egcd", "1073", "25"}, "1 12 -515\n"},
		{[]string{"inverse", "9", "26"}, "3\n"},
		{[]string{"factorial", "20"}, "2432902008176640000\n"},
		{[]string{"prime", "97"}, "true\n"},
		{[]string{"prime", "91"}, "false\n"},
		{[]string{"wilson", "13"}, "true\n"},
		{[]string{"sieve", "20"}, "2 3 5 7 11 13 17 19\n"},
		{[]string{"factorize", "360"}, "2 2 2 3 3 5\n"},
		{[]string{"totient", "36"}, "12\n"},
		{[]string{"cf", "415", "93"}, "4 2 6 7\n"},
		{[]string{"fib", "10"}, "55\n"},
		{[]string{"fibseq", "6"}, "0 1 1 2 3 5 8\n"},
		{[]string{"multiples", "10", "3", "5"}, "3 5 6 9\n"},
		{[]string{"summultiples", "1000", "3", "5"}, "233168\n"},
		{[]string{"shift-encipher", "1", "abcdef"}, "626364656667\n"},
		{[]string{"shift-decipher", "1", "626364656667"}, "abcdef\n"},
		{[]string{"affine-encipher", "3", "7", "\x00\x01"}, "070a\n"},
		{[]string{"affine-decipher", "3", "7", "070a"}, "\x00\x01\n"},
	}

	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			assert.Equal(t, tc.want, runOK(t, tc.args...))
		})
	}

	t.Run("version", func(t *testing.T) {
		assert.Contains(t, runOK(t, "version"), "numtheory")
	})
}

func TestCommandErrors(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	var out bytes.Buffer
	tests := []struct {
		args []string
		err  error
	}{
		{[]string{"nope"}, ErrUnknownCommand},
		{[]string{"gcd", "1"}, ErrUsage},
		{[]string{"gcd", "1", "x"}, ErrUsage},
		{[]string{"multiples", "10"}, ErrUsage},
		{[]string{"shift-encipher", "256", "a"}, ErrUsage},
		{[]string{"shift-decipher", "1", "zz"}, ErrUsage},
		{[]string{"modulus", "1", "0"}, ErrDivisionByZero},
		{[]string{"cf", "1", "0"}, ErrDivisionByZero},
		{[]string{"factorial", "21"}, num.ErrOverflow},
		{[]string{"factorial", "-1"}, num.ErrNegativeInput},
		{[]string{"inverse", "4", "26"}, num.ErrInverseDoesNotExist},
		{[]string{"affine-encipher", "2", "0", "a"}, num.ErrInvalidKey},
		{[]string{"fib", "93"}, num.ErrOverflow},
		{[]string{"sieve", "9000000000000000000"}, ErrUsage},
		{[]string{"sieve", strconv.Itoa(maxSieveLimit + 1)}, ErrUsage},
		{[]string{"multiples", "1000000000000", "1"}, ErrUsage},
		{[]string{"summultiples", strconv.Itoa(maxMultiplesBound + 1), "3", "5"}, ErrUsage},
	}

	for _, tc := range tests {
		err := runCommand(&out, log, tc.args[0], tc.args[1:])
		assert.True(t, errors.Is(err, tc.err), "%v: %v", tc.args, err)
	}
}

func TestToIndex(t *testing.T) {
	i, err := toIndex(92)
	require.NoError(t, err)
	assert.Equal(t, 92, i)

	i, err = toIndex(-1)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	_, err = toIndex(int64(math.MaxInt32) + 1)
	if strconv.IntSize == 32 {
		assert.True(t, errors.Is(err, ErrUsage))
	} else {
		assert.NoError(t, err)
	}

	// The largest int64 index either fails the range check or overflows.
	err = runCommand(&bytes.Buffer{}, logrus.New(), "fib", []string{"9223372036854775807"})
	assert.True(t, errors.Is(err, num.ErrOverflow) || errors.Is(err, ErrUsage))
}

func TestRunExitStatus(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"factorial", "21"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "command failed")

	assert.Equal(t, 2, run([]string{"nope"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"--log-level", "loud", "gcd", "1", "2"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"--log-format", "xml", "gcd", "1", "2"}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
}

func TestConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, rest, err := readConfig(newFlagSet(&bytes.Buffer{}), []string{"gcd", "1", "2"})
		require.NoError(t, err)
		assert.Equal(t, LogConfig{Level: "info", Format: "text"}, cfg.Log)
		assert.Equal(t, []string{"gcd", "1", "2"}, rest)
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv("NUMTHEORY_LOG_LEVEL", "debug")
		t.Setenv("NUMTHEORY_LOG_FORMAT", "json")
		cfg, _, err := readConfig(newFlagSet(&bytes.Buffer{}), nil)
		require.NoError(t, err)
		assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "numtheory.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n  format: json\n"), 0o600))

		cfg, _, err := readConfig(newFlagSet(&bytes.Buffer{}), []string{"--config", path})
		require.NoError(t, err)
		assert.Equal(t, LogConfig{Level: "warn", Format: "json"}, cfg.Log)

		// Flags take precedence over the file.
		cfg, _, err = readConfig(newFlagSet(&bytes.Buffer{}), []string{"-c", path, "--log-level", "error"})
		require.NoError(t, err)
		assert.Equal(t, LogConfig{Level: "error", Format: "json"}, cfg.Log)

		_, _, err = readConfig(newFlagSet(&bytes.Buffer{}), []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
		assert.Error(t, err)
	})

	t.Run("Logger", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newLogger(LogConfig{Level: "debug", Format: "json"}, &buf)
		require.NoError(t, err)

		require.NoError(t, runCommand(&bytes.Buffer{}, log, "gcd", []string{"4", "6"}))
		assert.Contains(t, buf.String(), `"command":"gcd"`)
	})
}
