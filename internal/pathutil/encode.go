// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

const upperhex = "0123456789ABCDEF"

// uriSafe marks the bytes EncodeURI leaves untouched: ASCII letters, digits,
// the unreserved marks -_.!~*'() and the reserved characters ;,/?:@&=+$#.
var uriSafe = func() [256]bool {
	var t [256]bool
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for _, c := range "-_.!~*'();,/?:@&=+$#" {
		t[c] = true
	}
	return t
}()

// EncodeURI percent-encodes s the way ECMAScript's encodeURI does: every
// byte outside the safe set, including '%' and space, becomes %XX of its
// UTF-8 encoding. Reserved URI characters are not escaped, so a value
// containing '/' or '?' changes the structure of the resulting path.
func EncodeURI(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !uriSafe[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriSafe[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}
