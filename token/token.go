// Package token derives the access token expected by the tweet syndication
// endpoint. The server recomputes the same value from the tweet ID, so the
// arithmetic below must match its IEEE-754 double evaluation exactly.
package token

import "math"

const (
	base     = 36
	digits   = "0123456789abcdefghijklmnopqrstuvwxyz"
	fracLen  = 8
	idScale  = 1e15
	emptyTok = "0"
)

// Derive returns the syndication token for a tweet ID.
func Derive(id uint64) string {
	// Scale first, then multiply. Reordering changes rounding.
	x := float64(float64(id)/idScale) * math.Pi

	whole, frac := math.Modf(x)

	var intDigits []byte
	for i := uint64(whole); i > 0; i /= base {
		intDigits = append(intDigits, digits[i%base])
	}

	out := make([]byte, 0, len(intDigits)+fracLen)
	for i := len(intDigits) - 1; i >= 0; i-- {
		out = append(out, intDigits[i])
	}

	for range fracLen {
		// Explicit conversion keeps the product from being fused.
		v := float64(frac * base)
		var d float64
		d, frac = math.Modf(v)
		out = append(out, digits[int(d)])
	}

	return stripZeros(out)
}

func stripZeros(b []byte) string {
	n := 0
	for _, c := range b {
		if c != '0' {
			b[n] = c
			n++
		}
	}
	if n == 0 {
		return emptyTok
	}
	return string(b[:n])
}
