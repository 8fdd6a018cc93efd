// Package currency caches the session's exchange-rate table.
//
// The table is fetched at most once per process from a domain.RateSource.
// A failed fetch is not retried: currency conversion stays unavailable for
// the rest of the session while length and weight keep working.
package currency
