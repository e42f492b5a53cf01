package uniuri

import (
	"crypto/rand"
)

// RequestIDLen gives about 119 bits of entropy with Alphabet.
const RequestIDLen = 20

// Alphabet is the set of characters identifiers are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// bytes at or above limit are rejected so every character is equally likely.
const limit = 256 - 256%len(Alphabet)

// New returns a random identifier of n characters.
func New(n int) string {
	if n <= 0 {
		return ""
	}

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)

	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out)
}

// RequestID returns a new identifier of RequestIDLen characters.
func RequestID() string {
	return New(RequestIDLen)
}
