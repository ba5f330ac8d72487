package service

import (
	"testing"
	"time"

	"guestdesk/modules/analytics/entity"

	"github.com/google/uuid"
)

func timePtr(t time.Time) *time.Time { return &t }

func kinds(changes []entity.Change, id uuid.UUID) []entity.ChangeKind {
	var out []entity.ChangeKind
	for _, c := range changes {
		if c.GuestID == id {
			out = append(out, c.Kind)
		}
	}
	return out
}

func TestDiffNoChanges(t *testing.T) {
	id := uuid.New()
	ts := time.Now()
	snap := map[uuid.UUID]entity.GuestStats{
		id: {GuestID: id, InviteViewsCount: 2, LastInviteView: timePtr(ts)},
	}

	if changes := Diff(snap, snap); len(changes) != 0 {
		t.Errorf("identical snapshots produced %v", changes)
	}
}

func TestDiffCountChange(t *testing.T) {
	id := uuid.New()
	prev := map[uuid.UUID]entity.GuestStats{id: {GuestID: id, InviteViewsCount: 1}}
	next := map[uuid.UUID]entity.GuestStats{id: {GuestID: id, InviteViewsCount: 2}}

	changes := Diff(prev, next)
	if got := kinds(changes, id); len(got) != 1 || got[0] != entity.ChangeInviteViewed {
		t.Errorf("got %v, want [invite_viewed]", got)
	}
}

func TestDiffNewlyPopulatedTimestampIsChange(t *testing.T) {
	id := uuid.New()
	prev := map[uuid.UUID]entity.GuestStats{id: {GuestID: id, RSVPViewsCount: 1}}
	next := map[uuid.UUID]entity.GuestStats{
		id: {GuestID: id, RSVPViewsCount: 1, LastRSVPView: timePtr(time.Now())},
	}

	changes := Diff(prev, next)
	if got := kinds(changes, id); len(got) != 1 || got[0] != entity.ChangeRSVPViewed {
		t.Errorf("got %v, want [rsvp_viewed]", got)
	}
}

func TestDiffDetectsRemoval(t *testing.T) {
	gone := uuid.New()
	stays := uuid.New()
	prev := map[uuid.UUID]entity.GuestStats{
		gone:  {GuestID: gone, InviteViewsCount: 5},
		stays: {GuestID: stays},
	}
	next := map[uuid.UUID]entity.GuestStats{
		stays: {GuestID: stays},
	}

	changes := Diff(prev, next)
	if got := kinds(changes, gone); len(got) != 1 || got[0] != entity.ChangeRemoved {
		t.Errorf("got %v, want [removed]", got)
	}
	if got := kinds(changes, stays); got != nil {
		t.Errorf("unchanged guest reported: %v", got)
	}
}

func TestDiffNewGuestOnlyCountsWithEngagement(t *testing.T) {
	quiet := uuid.New()
	viewer := uuid.New()
	prev := map[uuid.UUID]entity.GuestStats{}
	next := map[uuid.UUID]entity.GuestStats{
		quiet:  {GuestID: quiet},
		viewer: {GuestID: viewer, InviteViewsCount: 1},
	}

	changes := Diff(prev, next)
	if got := kinds(changes, quiet); got != nil {
		t.Errorf("quiet newcomer reported: %v", got)
	}
	if got := kinds(changes, viewer); len(got) != 1 || got[0] != entity.ChangeInviteViewed {
		t.Errorf("engaged newcomer = %v, want [invite_viewed]", got)
	}
}

func TestDiffBothCountersMove(t *testing.T) {
	id := uuid.New()
	prev := map[uuid.UUID]entity.GuestStats{id: {GuestID: id}}
	next := map[uuid.UUID]entity.GuestStats{
		id: {GuestID: id, InviteViewsCount: 1, RSVPViewsCount: 1},
	}

	changes := Diff(prev, next)
	got := kinds(changes, id)
	if len(got) != 2 {
		t.Fatalf("got %v, want two changes", got)
	}
}
