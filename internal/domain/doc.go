// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (actions, session state, rate tables) and contracts
// (interfaces) only.
package domain
