package service

import (
	"reflect"
	"testing"

	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
)

func TestProjectExcludesSoftDeleted(t *testing.T) {
	guests := []entity.Guest{
		{ID: uuid.New(), Name: "Zoe", Deleted: true, RSVPStatus: answer(entity.RSVPYes)},
		{ID: uuid.New(), Name: "Abe", RSVPStatus: answer(entity.RSVPYes)},
		{ID: uuid.New(), Name: "Mia", Deleted: true},
	}

	// A filter the deleted guests would match must still not surface them.
	state := DefaultViewState()
	state.RSVPFilter = RSVPConfirmed

	p := Project(guests, &state, nil)

	if got := names(p.Visible); !reflect.DeepEqual(got, []string{"Abe"}) {
		t.Errorf("visible = %v, want [Abe]", got)
	}
	if got := names(p.Removed); !reflect.DeepEqual(got, []string{"Mia", "Zoe"}) {
		t.Errorf("removed = %v, want name-ascending [Mia Zoe]", got)
	}
}

func TestProjectNormalizesStaleCategory(t *testing.T) {
	guests := []entity.Guest{
		{ID: uuid.New(), Name: "Abe", Relationship: "family"},
		{ID: uuid.New(), Name: "Bea", Relationship: "work"},
	}

	state := DefaultViewState()
	state.CategorySource = "cf:dietary"
	state.CategoryValue = "family"

	p := Project(guests, &state, nil)

	// "family" is not a dietary value, so the stale filter deactivates
	// instead of emptying the list.
	if state.CategoryValue != FilterAll {
		t.Errorf("stale value = %q, want %q", state.CategoryValue, FilterAll)
	}
	if len(p.Visible) != 2 {
		t.Errorf("visible = %v, want both guests", names(p.Visible))
	}
}

func TestCategoryValuesIgnoreActiveFilter(t *testing.T) {
	guests := []entity.Guest{
		{ID: uuid.New(), Name: "Abe", Relationship: "family"},
		{ID: uuid.New(), Name: "Bea", Relationship: "friends"},
		{ID: uuid.New(), Name: "Cleo", Relationship: "work"},
		{ID: uuid.New(), Name: "Dov", Relationship: "family"},
	}
	all := []string{"family", "friends", "work"}

	tests := []struct {
		name string
		mode FilterMode
	}{
		{"include keeps the full dropdown", ModeInclude},
		{"exclude keeps the filtered-out value", ModeExclude},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := DefaultViewState()
			state.CategoryValue = "family"
			state.CategoryMode = tc.mode

			p := Project(guests, &state, nil)

			if got := DistinctCategoryValues(p.Live, state.CategorySource); !reflect.DeepEqual(got, all) {
				t.Errorf("dropdown = %v, want %v regardless of the active filter", got, all)
			}
		})
	}
}

func TestProjectAppliesFilterThenSort(t *testing.T) {
	guests := []entity.Guest{
		{ID: uuid.New(), Name: "Cleo", InvitationSent: true},
		{ID: uuid.New(), Name: "Abe"},
		{ID: uuid.New(), Name: "Bea", InvitationSent: true},
	}

	state := DefaultViewState()
	state.InviteSentFilter = InviteSentYes

	p := Project(guests, &state, nil)
	if got := names(p.Visible); !reflect.DeepEqual(got, []string{"Bea", "Cleo"}) {
		t.Errorf("visible = %v, want [Bea Cleo]", got)
	}
}
