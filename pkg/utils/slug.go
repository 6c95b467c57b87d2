package utils

import (
	"math/rand"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSlug builds a URL slug from a product name plus a short random
// suffix so that two products with the same name never collide.
func GenerateSlug(name string) string {
	base := strings.ToLower(name)
	base = nonSlugChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "produto"
	}

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = slugSuffixAlphabet[rand.Intn(len(slugSuffixAlphabet))]
	}

	return base + "-" + string(suffix)
}
