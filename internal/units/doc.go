// Package units holds the static conversion tables for length and weight.
//
// Every factor is expressed relative to the category's base unit: the metre
// for length and the kilogram for weight. Currency has no static table; its
// rates come from the session's rate table.
package units
