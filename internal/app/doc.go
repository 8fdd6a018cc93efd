// Package app wires application dependencies for the CLI.
//
// Config is layered from built-in defaults, the config.yaml settings file in
// the home directory and TRICALC_* environment variables; the CLI applies its
// flags last. NewWire builds the settings store, the rate source and the
// currency store from Config, and App hands out calculator sessions that use
// them.
package app
