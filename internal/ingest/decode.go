package ingest

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// dropIllFormed removes ill-formed UTF-8 byte sequences and passes every
// well-formed rune through unchanged. A literal U+FFFD already present in
// the input is well-formed and survives; only bytes that do not decode
// are dropped.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			// Either an ill-formed byte or a rune cut off at the end of
			// src; wait for more input in the latter case.
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				return
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			err = transform.ErrShortDst
			return
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return
}

// permissive returns a transformer that drops undecodable byte sequences
// instead of failing. Valid input, including any replacement characters
// it already contains, passes through untouched.
func permissive() transform.Transformer {
	return dropIllFormed{}
}

// decodeString applies the permissive decoder to a byte slice and returns
// the cleaned text. Decode errors cannot occur: every input byte sequence
// maps to some (possibly shorter) valid string.
func decodeString(b []byte) string {
	out, _, err := transform.Bytes(permissive(), b)
	if err != nil {
		// dropIllFormed never errors; keep the raw bytes as a last resort.
		return string(b)
	}
	return string(out)
}
