// Package convert maps a value between two units of one category.
//
// Length and weight go through the static base-unit tables in
// internal/units. Currency goes through the session's rate table; a missing
// table or code makes the conversion unavailable rather than failing.
package convert
