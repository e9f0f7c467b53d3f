package stellar

import (
	"fmt"
	"os/exec"
	"strings"
)

// runFunc executes a command and returns its combined stdout+stderr.
// It is a seam for tests; production code uses exec.Command.
type runFunc func(name string, args ...string) ([]byte, error)

// CLI wraps the external `stellar` command-line tool for contract
// invocation and key management. All calls block until the subprocess
// exits; stderr is merged into stdout so diagnostics from the tool
// flow through to the caller unfiltered.
type CLI struct {
	// Binary is the executable to run, "stellar" unless overridden.
	Binary string
	// Network is passed as --network on every invocation.
	Network string

	run runFunc
}

// New returns a CLI targeting the given network.
func New(network string) *CLI {
	return &CLI{
		Binary:  "stellar",
		Network: network,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
}

// NewWithRunner returns a CLI whose subprocess execution is replaced
// by run. Used in tests.
func NewWithRunner(network string, run runFunc) *CLI {
	return &CLI{Binary: "stellar", Network: network, run: run}
}

// Invoke runs a contract function:
//
//	stellar contract invoke --id <contract> --source-account <source> --network <net> -- <fn> <args...>
//
// It returns the last non-empty line of the combined output, which for
// a successful read-only call is the function's return value. On
// failure the returned line is whatever the tool printed last; the
// error is returned alongside so callers can decide whether to
// distinguish the two.
func (c *CLI) Invoke(contractID, source, fn string, args ...string) (string, error) {
	cmdArgs := []string{
		"contract", "invoke",
		"--id", contractID,
		"--source-account", source,
		"--network", c.Network,
		"--", fn,
	}
	cmdArgs = append(cmdArgs, args...)

	out, err := c.run(c.Binary, cmdArgs...)
	line := LastLine(string(out))
	if err != nil {
		return line, fmt.Errorf("stellar contract invoke %s failed: %w", fn, err)
	}
	return line, nil
}

// KeysAddress resolves a configured key alias to its public
// identifier via `stellar keys address <alias>`.
func (c *CLI) KeysAddress(alias string) (string, error) {
	out, err := c.run(c.Binary, "keys", "address", alias)
	if err != nil {
		return "", fmt.Errorf("stellar keys address %s failed: %w (output: %s)", alias, err, strings.TrimSpace(string(out)))
	}
	return LastLine(string(out)), nil
}

// Version reports the installed tool's version line, used by health
// checks to confirm the binary is on PATH.
func (c *CLI) Version() (string, error) {
	out, err := c.run(c.Binary, "version")
	if err != nil {
		return "", fmt.Errorf("stellar version failed: %w", err)
	}
	return LastLine(string(out)), nil
}

// LastLine returns the last non-empty line of s, trimmed of
// surrounding whitespace. Empty input yields "".
func LastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
