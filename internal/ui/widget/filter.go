package widget

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// filterOptions returns the indexes of options matching query, in their
// original order. Fuzzy matches win; a plain substring match is the fallback.
func filterOptions(options []string, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(options))
		for i := range options {
			all[i] = i
		}
		return all
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, options)
	if len(ranks) > 0 {
		matched := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matched[rank.OriginalIndex] = struct{}{}
		}
		out := make([]int, 0, len(matched))
		for i := range options {
			if _, ok := matched[i]; ok {
				out = append(out, i)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	var out []int
	for i, opt := range options {
		if strings.Contains(strings.ToLower(opt), lower) {
			out = append(out, i)
		}
	}
	return out
}
