package catalog

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Match thresholds tuned for short spoken item names.
const (
	fuzzyThreshold     = 0.6  // below this, a candidate is ignored entirely
	confidentThreshold = 0.2  // best must lead the runner-up by this to win outright
	maxCandidates      = 5
)

type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchResolved
	MatchAmbiguous
)

// Match is the outcome of resolving a spoken item name against the catalog.
// Ambiguous results carry candidates ordered best-first and are never
// auto-resolved here; the caller must ask the speaker to choose.
type Match struct {
	Kind       MatchKind
	Item       Item
	Candidates []Item
}

var synonyms = strings.NewReplacer(
	"minutes", "min",
	"minute", "min",
	"hours", "hour",
	"hr", "hour",
	"private sauna", "private",
	"shared sauna", "shared",
)

func normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ResolveItem matches a spoken name against items in precedence order:
// exact normalized match, unique substring containment in either direction,
// synonym-normalized retry, then fuzzy similarity. A fuzzy best that does not
// clearly lead the field comes back ambiguous with up to five candidates.
func ResolveItem(spoken string, items []Item) Match {
	query := normalize(spoken)
	if query == "" || len(items) == 0 {
		return Match{Kind: MatchNone}
	}

	for _, it := range items {
		if normalize(it.Name) == query {
			return Match{Kind: MatchResolved, Item: it}
		}
	}

	if m, ok := containsMatch(query, items); ok {
		return m
	}

	if canonical := normalize(synonyms.Replace(query)); canonical != query {
		for _, it := range items {
			if normalize(synonyms.Replace(it.Name)) == canonical {
				return Match{Kind: MatchResolved, Item: it}
			}
		}
		if m, ok := containsMatch(canonical, items); ok {
			return m
		}
	}

	return fuzzyMatch(query, items)
}

func containsMatch(query string, items []Item) (Match, bool) {
	var hits []Item
	for _, it := range items {
		name := normalize(it.Name)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			hits = append(hits, it)
		}
	}
	switch len(hits) {
	case 0:
		return Match{}, false
	case 1:
		return Match{Kind: MatchResolved, Item: hits[0]}, true
	default:
		if len(hits) > maxCandidates {
			hits = hits[:maxCandidates]
		}
		return Match{Kind: MatchAmbiguous, Candidates: hits}, true
	}
}

type scored struct {
	item  Item
	score float64
}

func fuzzyMatch(query string, items []Item) Match {
	var ranked []scored
	for _, it := range items {
		s := levenshtein.Similarity(query, normalize(it.Name), nil)
		if s >= fuzzyThreshold {
			ranked = append(ranked, scored{item: it, score: s})
		}
	}
	if len(ranked) == 0 {
		return Match{Kind: MatchNone}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) == 1 || ranked[0].score-ranked[1].score >= confidentThreshold {
		return Match{Kind: MatchResolved, Item: ranked[0].item}
	}

	n := min(len(ranked), maxCandidates)
	candidates := make([]Item, 0, n)
	for _, r := range ranked[:n] {
		candidates = append(candidates, r.item)
	}
	return Match{Kind: MatchAmbiguous, Candidates: candidates}
}
