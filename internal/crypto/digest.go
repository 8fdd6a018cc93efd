package crypto

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"tricalc/internal/domain"
)

// Digest returns a short hex fingerprint of a rate table.
//
// It hashes the base code and every code=rate pair in lexical order with
// BLAKE2b-256 and truncates to 10 bytes (20 hex chars). The fetch time is not
// part of the digest.
func Digest(t domain.RateTable) string {
	var b strings.Builder
	b.WriteString("base=")
	b.WriteString(t.Base())
	b.WriteByte('\n')
	for _, code := range t.Codes() {
		r, _ := t.Rate(code)
		b.WriteString(code)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(r, 'g', -1, 64))
		b.WriteByte('\n')
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:10])
}
