package plan

import (
	"strings"

	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/entity"
)

// Subscription tiers. Ordering matters: comparisons rely on Free < Pro < Premium.
type Tier int

const (
	Free Tier = iota
	Pro
	Premium
)

func (t Tier) String() string {
	switch t {
	case Pro:
		return "pro"
	case Premium:
		return "premium"
	default:
		return "free"
	}
}

// Parse maps a raw tier string to a Tier. Anything unknown or empty maps
// to Free: gating must never fail open to a wider history window.
func Parse(raw string) Tier {
	t, _ := ParseKnown(raw)
	return t
}

// ParseKnown reports whether raw names a known tier. Legacy billing aliases
// ("pro+", "pro_plus") collapse onto their base tier.
func ParseKnown(raw string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "free":
		return Free, true
	case "pro", "pro+", "pro_plus":
		return Pro, true
	case "premium", "premium+", "premium_plus":
		return Premium, true
	default:
		return Free, false
	}
}

// HistoryWeeks returns how many ISO weeks of activity history the tier may
// retrieve, current week included.
func (t Tier) HistoryWeeks() int {
	switch t {
	case Pro:
		return 2
	case Premium:
		return 4
	default:
		return 1
	}
}

// Meets reports whether the tier satisfies a route's minimum tier floor.
func (t Tier) Meets(min Tier) bool {
	return t >= min
}

// Resolve derives the effective tier for a user. The persisted plan column is
// the single source of truth; token claims are never consulted for gating.
func Resolve(user *entity.User) Tier {
	if user == nil {
		return Free
	}
	return Parse(user.Plan)
}
