// Package main runs the in-memory HTTP rate server used by tricalc during
// development and tests. It serves one fixed rate table, either the built-in
// sample or one loaded from a JSON file, or with --upstream acts as a caching
// proxy: the upstream rate API is fetched once, on the first request, and the
// cached table is served from then on.
//
// HTTP API
//
//	GET /latest/{base}
//	    Return the table re-expressed relative to {base} as
//	    {"base": "...", "date": "YYYY-MM-DD", "rates": {"CODE": rate}}.
//	    Unknown bases are 404. In proxy mode a failed upstream fetch is
//	    answered with 500 and {"error": "..."}; it is not retried.
//
//	GET /healthz
//	    Return 200 "ok".
//
// Behaviour
//
//   - All state is held in memory; the table never changes once served.
//   - A lightweight access log records method, path, status, bytes and
//     duration for each request.
//   - The default listen address is :8080. Point tricalc at it with
//     --rates-url http://127.0.0.1:8080/latest/USD.
package main
