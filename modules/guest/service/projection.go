package service

import (
	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
)

// Projection is the derived guest-list view: the filtered and sorted
// visible guests plus the separately rendered removed section. Live is
// the pre-filter non-deleted set; category dropdown values come from it
// so active filters never shrink the host's choices.
type Projection struct {
	Visible []entity.Guest
	Removed []entity.Guest
	Live    []entity.Guest
}

// Project derives the visible guest list from the full collection and the
// view state. Soft-deleted guests never pass the pipeline regardless of
// active filters; they are returned apart, name-ascending, with only a
// reinstate action meaningful on them.
func Project(guests []entity.Guest, state *ViewState, attendingCounts map[uuid.UUID]int) Projection {
	live := make([]entity.Guest, 0, len(guests))
	removed := make([]entity.Guest, 0)
	for i := range guests {
		if guests[i].Deleted {
			removed = append(removed, guests[i])
			continue
		}
		live = append(live, guests[i])
	}

	NormalizeCategoryValue(state, live)
	visible := ApplyFilters(live, state)
	ApplySort(visible, state, attendingCounts)

	removedState := ViewState{SortKey: SortByName, SortDir: SortAsc}
	ApplySort(removed, &removedState, nil)

	return Projection{Visible: visible, Removed: removed, Live: live}
}
