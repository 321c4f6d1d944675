package font

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bnema/fontpicker/internal/domain/entity"
)

const (
	styleNormal  = "normal"
	styleItalic  = "italic"
	italicSuffix = "i"
)

// NormalizeWeights flattens the input, coerces every leaf to an integer and
// returns the distinct positive weights in ascending order. Values that
// cannot be coerced are dropped.
func NormalizeWeights(values ...any) []int {
	seen := make(map[int]struct{})
	weights := make([]int, 0)
	for _, v := range Flatten(values...) {
		w, err := entity.CoerceWeight(v)
		if err != nil || w <= 0 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		weights = append(weights, w)
	}
	slices.Sort(weights)
	return weights
}

// ResolveWeights applies a weight filter to the entry's normalized weights.
// An empty intersection leaves the catalog weights untouched so that an
// over-restrictive filter never removes every variant.
func ResolveWeights(entry *entity.FontEntry, filter []int) []int {
	if entry == nil {
		return nil
	}
	weights := NormalizeWeights(entry.Weights)
	if len(weights) == 0 || len(filter) == 0 {
		return weights
	}

	filtered := make([]int, 0, len(weights))
	for _, w := range weights {
		if slices.Contains(filter, w) {
			filtered = append(filtered, w)
		}
	}
	if len(filtered) == 0 {
		return weights
	}
	return filtered
}

// StyleSupport summarizes which style labels an entry declares.
type StyleSupport struct {
	Normal bool
	Italic bool
}

// StylesOf inspects style labels case-insensitively.
func StylesOf(entry *entity.FontEntry) StyleSupport {
	var support StyleSupport
	if entry == nil {
		return support
	}
	for _, style := range entry.Styles {
		switch strings.ToLower(style) {
		case styleNormal:
			support.Normal = true
		case styleItalic:
			support.Italic = true
		}
	}
	return support
}

// BuildTokens negotiates the provider tokens (e.g. 400,400i,700) for an entry.
//
// Italic tokens are emitted when the entry has italics and either the caller
// asked for them or italic is the only style. Bare tokens are suppressed only
// for italic-only entries.
func BuildTokens(entry *entity.FontEntry, filter []int, includeItalics bool) []string {
	weights := ResolveWeights(entry, filter)
	if len(weights) == 0 {
		return nil
	}

	styles := StylesOf(entry)
	useItalics := styles.Italic && (includeItalics || !styles.Normal)
	emitBare := styles.Normal || !styles.Italic

	tokens := make([]string, 0, len(weights)*2)
	for _, w := range weights {
		weight := strconv.Itoa(w)
		if emitBare {
			tokens = appendUnique(tokens, weight)
		}
		if useItalics {
			tokens = appendUnique(tokens, weight+italicSuffix)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(list, v) {
			list = append(list, v)
		}
	}
	return list
}
