// Package rates talks to exchange-rate endpoints.
//
// HTTP implements domain.RateSource against any endpoint returning
//
//	{"base": "USD", "date": "2024-05-01", "rates": {"EUR": 0.93, ...}}
//
// with rates expressed relative to the base currency. Server serves the same
// payload from an in-memory table for local development and tests.
//
// A non-2xx status, an undecodable body, a missing or empty "rates" object,
// or a non-positive rate are all fetch failures. Errors carry the URL and
// status text to aid diagnostics; payload problems wrap ErrMalformedPayload.
package rates
