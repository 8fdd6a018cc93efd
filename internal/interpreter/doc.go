// Package interpreter reduces a stream of calculator actions to session state.
//
// Reduce is a pure, total function over (state, action, rates). It never
// fails: malformed input is rejected by returning the state unchanged, and
// arithmetic anomalies are carried as "Infinity" or "NaN" text. Evaluation is
// strictly left to right with a single pending operator.
//
// Session wraps Reduce in a small actor. It serializes actions, performs the
// rate-load effect Reduce asks for, and re-renders once rates arrive.
package interpreter
