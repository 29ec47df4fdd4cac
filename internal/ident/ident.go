package ident

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// SuffixLen is the length of the random part of an identifier (~47 bits of entropy).
	SuffixLen = 8

	// separator joins the timestamp and the random suffix.
	separator = "-"

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// Chars is the alphabet of the random suffix.
var Chars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new identifier for a record created now.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a new identifier for a record created at t.
func NewAt(t time.Time) string {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
	b.WriteString(separator)
	b.Write(RandomChars(SuffixLen, Chars))

	return b.String()
}

// Time extracts the creation time encoded in id.
// ok is false if id was not produced by this package (e.g. seeded ids like "1").
func Time(id string) (t time.Time, ok bool) {
	millis, _, found := strings.Cut(id, separator)
	if !found {
		return time.Time{}, false
	}

	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.UnixMilli(ms), true
}

// RandomChars returns length random bytes picked from chars (2..256 entries).
// Bytes that would bias the modulo are rejected and redrawn.
func RandomChars(length int, chars []byte) []byte {
	if length <= 0 {
		return nil
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("ident: wrong charset length")
	}

	limit := byteRange - (byteRange % clen)
	out := make([]byte, 0, length)
	buf := make([]byte, length*2) //nolint:mnd

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("ident: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			if int(rb) >= limit {
				continue
			}

			out = append(out, chars[int(rb)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return out
}
