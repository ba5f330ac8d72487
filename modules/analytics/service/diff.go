package service

import (
	"sort"
	"time"

	"guestdesk/modules/analytics/entity"

	"github.com/google/uuid"
)

// Diff compares two snapshots of the same event and reports what moved.
// A guest present before and gone now counts as removed; view counters or
// their timestamps moving count as the matching viewed change. New guests
// produce no change until they view something.
func Diff(prev, next map[uuid.UUID]entity.GuestStats) []entity.Change {
	var changes []entity.Change

	for id, before := range prev {
		after, ok := next[id]
		if !ok {
			changes = append(changes, entity.Change{GuestID: id, Kind: entity.ChangeRemoved})
			continue
		}
		if after.InviteViewsCount != before.InviteViewsCount ||
			timeChanged(before.LastInviteView, after.LastInviteView) {
			changes = append(changes, entity.Change{GuestID: id, Kind: entity.ChangeInviteViewed})
		}
		if after.RSVPViewsCount != before.RSVPViewsCount ||
			timeChanged(before.LastRSVPView, after.LastRSVPView) {
			changes = append(changes, entity.Change{GuestID: id, Kind: entity.ChangeRSVPViewed})
		}
	}

	for id, after := range next {
		if _, ok := prev[id]; ok {
			continue
		}
		// A newly appeared guest only matters once it has engagement.
		if after.InviteViewsCount > 0 {
			changes = append(changes, entity.Change{GuestID: id, Kind: entity.ChangeInviteViewed})
		}
		if after.RSVPViewsCount > 0 {
			changes = append(changes, entity.Change{GuestID: id, Kind: entity.ChangeRSVPViewed})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].GuestID != changes[j].GuestID {
			return changes[i].GuestID.String() < changes[j].GuestID.String()
		}
		return changes[i].Kind < changes[j].Kind
	})
	return changes
}

// timeChanged treats a timestamp becoming populated, or moving, as a
// change. Nil on both sides is not a change.
func timeChanged(before, after *time.Time) bool {
	if before == nil && after == nil {
		return false
	}
	if before == nil || after == nil {
		return true
	}
	return !before.Equal(*after)
}
