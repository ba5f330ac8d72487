package service

import (
	"sort"

	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// rsvpOrdinal places unconfirmed guests first on the status scale.
func rsvpOrdinal(g *entity.Guest) int {
	switch g.EffectiveAnswer() {
	case entity.RSVPYes:
		return 1
	case entity.RSVPMaybe:
		return 2
	case entity.RSVPNo:
		return 3
	}
	return 0
}

func boolOrdinal(b bool) int {
	if b {
		return 1
	}
	return 0
}

// guestsCountOrdinal treats an absent headcount as -1 so it sorts before
// any real count.
func guestsCountOrdinal(g *entity.Guest) int {
	if g.RSVPGuestsCount == nil {
		return -1
	}
	return *g.RSVPGuestsCount
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ApplySort orders guests in place by the view state's key and direction.
// Every key except name itself tie-breaks on name ascending, and the
// tiebreak is not flipped by direction, so reversing a sort preserves each
// tie-group's internal order. AttendingCounts feeds the
// sub_events_attending key: per guest, the number of sub-events with a
// "yes" answer and a resolved title.
func ApplySort(guests []entity.Guest, state *ViewState, attendingCounts map[uuid.UUID]int) {
	// Collators are not safe for concurrent use; build one per call.
	// Loose comparison folds case and diacritics (collation strength =
	// base).
	c := collate.New(language.Und, collate.Loose)

	primary := func(a, b *entity.Guest) int {
		switch state.SortKey {
		case SortByEmail:
			return c.CompareString(a.Email, b.Email)
		case SortByCategory:
			return c.CompareString(a.Relationship, b.Relationship)
		case SortByNotes:
			return c.CompareString(a.Notes, b.Notes)
		case SortByRSVPStatus:
			return intCompare(rsvpOrdinal(a), rsvpOrdinal(b))
		case SortByGuestsCount:
			return intCompare(guestsCountOrdinal(a), guestsCountOrdinal(b))
		case SortByInviteSent:
			return intCompare(boolOrdinal(a.InvitationSent), boolOrdinal(b.InvitationSent))
		case SortBySubEventsAssigned:
			return intCompare(len(a.SubEventInvites), len(b.SubEventInvites))
		case SortBySubEventsAttending:
			return intCompare(attendingCounts[a.ID], attendingCounts[b.ID])
		default:
			return c.CompareString(a.Name, b.Name)
		}
	}

	desc := state.SortDir == SortDesc
	sort.SliceStable(guests, func(i, j int) bool {
		cmp := primary(&guests[i], &guests[j])
		if desc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		if state.SortKey == SortByName {
			return false
		}
		return c.CompareString(guests[i].Name, guests[j].Name) < 0
	})
}
