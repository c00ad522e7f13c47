package valueobject

import (
	"strings"
)

// ExtractTags returns the hashtag values of a caption in order of
// appearance. A token qualifies as a tag iff its first character is '#';
// the leading '#' is stripped and nothing else is normalized. Matching is
// made case-insensitive at search time, not here.
func ExtractTags(caption string) []string {
	var tags []string
	for _, token := range strings.Fields(caption) {
		if strings.HasPrefix(token, "#") {
			tags = append(tags, token[1:])
		}
	}
	return tags
}

// JoinTags renders a tag list into the single-space-joined form used for
// storage.
func JoinTags(tags []string) string {
	return strings.Join(tags, " ")
}
