// Package testutil provides shared fixtures for exercising key paths with
// realistic subscript data: canonic numbers, printable strings, and raw
// binary octets.
package testutil

import (
	"fmt"
	"math/rand"
)

// RandomSubscript returns a subscript of 1..maxLen bytes. Roughly a third
// are canonic numbers, a third printable strings, and a third raw binary,
// mirroring the mix a real database sees.
func RandomSubscript(r *rand.Rand, maxLen int) []byte {
	switch r.Intn(3) {
	case 0:
		return RandomCanonicalNumber(r)
	case 1:
		return randomPrintable(r, maxLen)
	default:
		return randomBinary(r, maxLen)
	}
}

// RandomSubscripts returns depth subscripts drawn from RandomSubscript.
func RandomSubscripts(r *rand.Rand, depth, maxLen int) [][]byte {
	subs := make([][]byte, depth)
	for i := range subs {
		subs[i] = RandomSubscript(r, maxLen)
	}
	return subs
}

// RandomCanonicalNumber returns a number in canonic form: no leading
// zeros, no trailing fractional zeros, fractions written as ".5".
func RandomCanonicalNumber(r *rand.Rand) []byte {
	n := r.Int63n(1_000_000) - 500_000
	if n == 0 {
		n = 1 // "0.5" is written ".5"; skip the special case
	}
	if r.Intn(2) == 0 {
		return []byte(fmt.Sprintf("%d", n))
	}
	frac := r.Intn(9) + 1 // 1..9, so no trailing zero
	return []byte(fmt.Sprintf("%d.%d", n, frac))
}

func randomPrintable(r *rand.Rand, maxLen int) []byte {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -_."
	n := r.Intn(maxLen) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	// A leading digit would collide with the numeric class; force a letter.
	b[0] = alphabet[r.Intn(52)]
	return b
}

func randomBinary(r *rand.Rand, maxLen int) []byte {
	n := r.Intn(maxLen) + 1
	b := make([]byte, n)
	r.Read(b)
	return b
}
