package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	assetExtRegex  = regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	assetSlugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// ParseAssetSlug extracts the catalog slug from a Drive image filename.
// Convention: the filename minus its extension is the slug of the connector
// or cable type the image belongs to, e.g. "n-male.png" -> "n-male",
// "LMR-400.JPG" -> "lmr-400". Files that don't follow the convention are
// rejected so they can be skipped during sync.
func ParseAssetSlug(filename string) (string, error) {
	nameWithoutExt := assetExtRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(filename)), "")
	if nameWithoutExt == "" {
		return "", fmt.Errorf("empty filename")
	}

	if !assetSlugRegex.MatchString(nameWithoutExt) {
		return "", fmt.Errorf("invalid asset filename %q: expected a slug like \"n-male.png\"", filename)
	}

	return nameWithoutExt, nil
}
