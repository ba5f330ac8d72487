package service

import (
	"sort"
	"strings"

	"guestdesk/modules/guest/entity"
)

// Filter predicates. Each answers one dimension for one guest, independent
// of the dimension's include/exclude mode.

func matchRSVP(g *entity.Guest, filter string) bool {
	switch filter {
	case RSVPUnconfirmed:
		return g.Unconfirmed()
	case RSVPConfirmed:
		return g.EffectiveAnswer() == entity.RSVPYes
	case RSVPDeclined:
		return g.EffectiveAnswer() == entity.RSVPNo
	}
	return true
}

func matchCategory(g *entity.Guest, source, value string) bool {
	if key := strings.TrimPrefix(source, CustomFieldPrefix); key != source {
		return strings.TrimSpace(g.CustomFields[key]) == value
	}
	return strings.TrimSpace(g.Relationship) == value
}

func matchInviteSent(g *entity.Guest, filter string) bool {
	switch filter {
	case InviteSentYes:
		return g.InvitationSent
	case InviteSentNo:
		return !g.InvitationSent
	}
	return true
}

// matchSubEvents is true when the guest's assignment set intersects the
// selected IDs (OR semantics across selections).
func matchSubEvents(g *entity.Guest, ids []int64) bool {
	for _, id := range ids {
		if g.InvitedTo(id) {
			return true
		}
	}
	return false
}

func matchSearch(g *entity.Guest, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Name), q)
}

// keepByMode applies a dimension's mode to its predicate result: include
// keeps matches, exclude keeps the complement.
func keepByMode(matched bool, mode FilterMode) bool {
	if mode == ModeExclude {
		return !matched
	}
	return matched
}

// ApplyFilters runs every active dimension over the guests, AND-composed:
// a guest must survive each active dimension to remain. Inactive
// dimensions impose no constraint.
func ApplyFilters(guests []entity.Guest, state *ViewState) []entity.Guest {
	out := make([]entity.Guest, 0, len(guests))
	for i := range guests {
		g := &guests[i]
		if state.searchActive() && !matchSearch(g, state.Search) {
			continue
		}
		if state.rsvpFilterActive() && !keepByMode(matchRSVP(g, state.RSVPFilter), state.RSVPMode) {
			continue
		}
		if state.categoryFilterActive() && !keepByMode(matchCategory(g, state.CategorySource, state.CategoryValue), state.CategoryMode) {
			continue
		}
		if state.inviteSentFilterActive() && !keepByMode(matchInviteSent(g, state.InviteSentFilter), state.InviteSentMode) {
			continue
		}
		if state.subEventFilterActive() && !keepByMode(matchSubEvents(g, state.SubEventIDs), state.SubEventMode) {
			continue
		}
		out = append(out, *g)
	}
	return out
}

// DistinctCategoryValues returns the data-driven dropdown values for a
// category source: the distinct non-empty trimmed values across all
// guests, sorted alphabetically.
func DistinctCategoryValues(guests []entity.Guest, source string) []string {
	seen := map[string]bool{}
	key := ""
	if k := strings.TrimPrefix(source, CustomFieldPrefix); k != source {
		key = k
	}
	for i := range guests {
		var v string
		if key != "" {
			v = strings.TrimSpace(guests[i].CustomFields[key])
		} else {
			v = strings.TrimSpace(guests[i].Relationship)
		}
		if v != "" {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// NormalizeCategoryValue resets a stale value to "all" when it is not a
// valid value for the current source, e.g. after the source switched from
// relationship to a custom field.
func NormalizeCategoryValue(state *ViewState, guests []entity.Guest) {
	if !state.categoryFilterActive() {
		return
	}
	for _, v := range DistinctCategoryValues(guests, state.CategorySource) {
		if v == state.CategoryValue {
			return
		}
	}
	state.CategoryValue = FilterAll
}
