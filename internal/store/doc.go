// Package store provides file-based persistence for tricalc's user settings.
//
// Settings are serialised as YAML in the user’s configured home directory and
// written atomically via a temp file and rename. Calculator session state is
// never written to disk.
package store
