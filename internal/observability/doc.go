// Package observability holds the process-wide structured logger.
package observability
