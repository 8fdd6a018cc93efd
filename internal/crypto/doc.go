// Package crypto exposes the hashing used by tricalc.
//
// Digest gives a short BLAKE2b fingerprint of a rate table so users (and the
// logs) can tell which snapshot of rates a session is converting with.
package crypto
