package domain

import (
	"sort"
	"strings"
)

// FeaturedLimit is the number of posts returned by the featured listing.
const FeaturedLimit = 10

// WordCount returns the number of whitespace separated tokens in the post's
// longDescription, or 0 when the field is missing or not a string.
func WordCount(post Document) int {
	desc, ok := post.String(FieldLongDescription)
	if !ok {
		return 0
	}
	return len(strings.Fields(desc))
}

// RankFeatured projects a count field onto a copy of every post, orders the
// copies by count descending and returns at most limit of them.
// The input slice and its documents are left untouched.
func RankFeatured(posts []Document, limit int) []Document {
	ranked := make([]Document, 0, len(posts))
	for _, p := range posts {
		c := p.Clone()
		c[FieldCount] = WordCount(p)
		ranked = append(ranked, c)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i][FieldCount].(int) > ranked[j][FieldCount].(int)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
