package group

import (
	"math/rand"
	"regexp"
	"strings"
)

var (
	slugSpaces    = regexp.MustCompile(`\s+`)
	slugNonWord   = regexp.MustCompile(`[^a-z0-9\-_]+`)
	slugRepeats   = regexp.MustCompile(`\-\-+`)
	slugEdgeDash  = regexp.MustCompile(`^-+|-+$`)
	suffixLetters = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// baseSlug lowercases a group name into a URL-safe slug.
func baseSlug(name string) string {
	s := strings.ToLower(name)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugNonWord.ReplaceAllString(s, "")
	s = slugRepeats.ReplaceAllString(s, "-")
	s = slugEdgeDash.ReplaceAllString(s, "")
	return s
}

// randomSuffix returns a short suffix used to disambiguate taken slugs.
func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixLetters[rand.Intn(len(suffixLetters))]
	}
	return string(b)
}
