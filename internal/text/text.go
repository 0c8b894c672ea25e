// Package text provides the field-text helpers shared by search and
// duplicate detection: markup stripping, field checksums, and wildcard
// name matching.
package text

import (
	"crypto/sha1"
	"encoding/binary"
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRe = regexp.MustCompile(`(?s)<[^>]*>`)
	imgTagRe  = regexp.MustCompile(`(?is)<img\b[^>]*\bsrc\s*=\s*(?:"([^"]+)"|'([^']+)'|([^ >]+))[^>]*>`)
	soundRe   = regexp.MustCompile(`\[sound:([^\]]+)\]`)
)

// StripHTMLPreservingMediaFilenames removes markup from a field value
// while keeping the filenames of embedded images and sounds, so that
// checksums distinguish notes whose only visible content is media.
func StripHTMLPreservingMediaFilenames(s string) string {
	s = imgTagRe.ReplaceAllString(s, " $1$2$3 ")
	s = soundRe.ReplaceAllString(s, " $1 ")
	s = htmlTagRe.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

// FieldChecksum returns the 32-bit checksum used for duplicate
// detection: the first four bytes of the SHA1 of the (already
// stripped) field text.
func FieldChecksum(s string) uint32 {
	sum := sha1.Sum([]byte(s))
	return binary.BigEndian.Uint32(sum[:4])
}

// MatchesWildcard reports whether name matches the search pattern.
// Matching is case-insensitive; '*' in the pattern matches any run of
// characters. A pattern without '*' is a plain equality test.
func MatchesWildcard(name, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return strings.EqualFold(name, pattern)
	}
	re, err := regexp.Compile("(?is)^" + wildcardToRegexp(pattern) + "$")
	if err != nil {
		return false
	}
	return re.MatchString(name)
}

func wildcardToRegexp(pattern string) string {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return strings.Join(parts, ".*")
}
