// Package applog wires up the shared op/go-logging logger used across the
// engine (mcts, cmd/atomchego), matching the lazy
// package-level-logger pattern other Go chess engines use for this same
// dependency: a leveled, backend-configurable logger built once and handed
// out via Get, rather than a bare log.Logger per package.
package applog

import (
	"os"

	"github.com/op/go-logging"
)

var logger *logging.Logger

const format = `%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)

	logger = logging.MustGetLogger("atomchego")
}

// Get returns the shared logger. Call SetLevel to change its verbosity,
// typically once from cmd/atomchego's flag parsing.
func Get() *logging.Logger {
	return logger
}

// SetLevel adjusts the logger's verbosity. lvl is one of the
// github.com/op/go-logging level constants (logging.DEBUG, logging.INFO,
// ...).
func SetLevel(lvl logging.Level) {
	logging.SetLevel(lvl, "")
}
