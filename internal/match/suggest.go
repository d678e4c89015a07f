package match

import (
	"sort"
	"strings"
)

// MinSimilarity is the lowest normalized similarity a candidate needs to be
// suggested.
const MinSimilarity = 0.5

// minWordLen is the shortest word that counts as shared between two names.
const minWordLen = 3

// Suggest returns up to limit candidates that resemble name, best first.
// Candidates are scored with NormalizedSimilarity. A candidate that contains
// the folded name, or shares a word of at least minWordLen letters with it
// ("ReaderWriter" and "BufferedReader"), qualifies whatever its score. Ties
// are broken by candidate name. A non-positive limit means no limit.
func Suggest(name string, candidates []string, limit int) []string {
	folded := NormalizeIdent(name)
	if folded == "" {
		return nil
	}

	words := make(map[string]struct{})
	for _, w := range Tokens(name) {
		if len(w) >= minWordLen {
			words[w] = struct{}{}
		}
	}

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		fc := NormalizeIdent(c)
		if fc == "" {
			continue
		}

		score := NormalizedSimilarity(name, c)
		if score < MinSimilarity && !strings.Contains(fc, folded) && !sharesWord(c, words) {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}

func sharesWord(name string, words map[string]struct{}) bool {
	for _, w := range Tokens(name) {
		if _, ok := words[w]; ok {
			return true
		}
	}

	return false
}
