// Package md5sum computes MD5 digests of text.
package md5sum

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Sum returns the lowercase hex MD5 digest of the UTF-8 bytes of text.
func Sum(text string) string {
	digest := md5.Sum([]byte(text))
	return hex.EncodeToString(digest[:])
}

// SumUpper is Sum in uppercase hex.
func SumUpper(text string) string {
	return strings.ToUpper(Sum(text))
}
