// Package commands defines the tricalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - repl      Interactive calculator (default when no command is given)
//   - eval      Feed tokens to a fresh session and print the display
//   - convert   Convert a value between two units or currencies
//   - rates     Fetch and print the currency rate table
//   - units     List the units of each conversion category
//   - config    Print or save the effective configuration
//
// # Implementation
//
// The root command resolves the home directory, layers the configuration
// (defaults, config.yaml, TRICALC_* variables, flags) and builds the app
// before any subcommand runs, so handlers share one HTTP client and one
// currency store.
package commands
