package service

import (
	"reflect"
	"testing"

	coreEntity "guestdesk/core/entity"
	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func answer(a entity.RSVPAnswer) *entity.RSVPAnswer { return &a }

func testGuests() []entity.Guest {
	return []entity.Guest{
		{
			ID:           uuid.New(),
			Name:         "Amira",
			Relationship: "family",
			RSVPStatus:   answer(entity.RSVPYes),
			CustomFields: coreEntity.StringMap{"dietary": "vegan"},
		},
		{
			ID:              uuid.New(),
			Name:            "Boris",
			Relationship:    "friends",
			RSVPWillAttend:  answer(entity.RSVPNo),
			InvitationSent:  true,
			SubEventInvites: pq.Int64Array{1, 2},
		},
		{
			ID:              uuid.New(),
			Name:            "Carla",
			Relationship:    "work",
			SubEventInvites: pq.Int64Array{3},
			CustomFields:    coreEntity.StringMap{"dietary": "vegan"},
		},
		{
			ID:           uuid.New(),
			Name:         "Dmitri",
			Relationship: "family",
			RSVPStatus:   answer(entity.RSVPMaybe),
		},
	}
}

func names(guests []entity.Guest) []string {
	out := make([]string, len(guests))
	for i := range guests {
		out[i] = guests[i].Name
	}
	return out
}

func TestIncludeExcludeComplement(t *testing.T) {
	guests := testGuests()

	dimensions := []struct {
		name  string
		state ViewState
	}{
		{"rsvp", func() ViewState {
			s := DefaultViewState()
			s.RSVPFilter = RSVPConfirmed
			return s
		}()},
		{"category", func() ViewState {
			s := DefaultViewState()
			s.CategoryValue = "family"
			return s
		}()},
		{"invite sent", func() ViewState {
			s := DefaultViewState()
			s.InviteSentFilter = InviteSentYes
			return s
		}()},
		{"sub events", func() ViewState {
			s := DefaultViewState()
			s.SubEventIDs = []int64{1, 3}
			return s
		}()},
	}

	for _, dim := range dimensions {
		t.Run(dim.name, func(t *testing.T) {
			include := dim.state
			include.RSVPMode, include.CategoryMode = ModeInclude, ModeInclude
			include.InviteSentMode, include.SubEventMode = ModeInclude, ModeInclude

			exclude := dim.state
			exclude.RSVPMode, exclude.CategoryMode = ModeExclude, ModeExclude
			exclude.InviteSentMode, exclude.SubEventMode = ModeExclude, ModeExclude

			in := ApplyFilters(guests, &include)
			out := ApplyFilters(guests, &exclude)

			if len(in)+len(out) != len(guests) {
				t.Fatalf("include (%d) + exclude (%d) != total (%d)", len(in), len(out), len(guests))
			}
			seen := map[uuid.UUID]bool{}
			for _, g := range in {
				seen[g.ID] = true
			}
			for _, g := range out {
				if seen[g.ID] {
					t.Errorf("guest %s in both partitions", g.Name)
				}
			}
		})
	}
}

func TestApplyFiltersAndComposition(t *testing.T) {
	guests := testGuests()

	state := DefaultViewState()
	state.CategoryValue = "family"
	state.RSVPFilter = RSVPConfirmed

	got := names(ApplyFilters(guests, &state))
	// Amira is the only family member with a yes.
	if !reflect.DeepEqual(got, []string{"Amira"}) {
		t.Errorf("got %v, want [Amira]", got)
	}
}

func TestApplyFiltersAllIsInactive(t *testing.T) {
	guests := testGuests()
	state := DefaultViewState()
	state.RSVPFilter = FilterAll
	state.RSVPMode = ModeExclude

	if got := ApplyFilters(guests, &state); len(got) != len(guests) {
		t.Errorf("inactive dimension filtered: kept %d of %d", len(got), len(guests))
	}
}

func TestUnconfirmedFilter(t *testing.T) {
	guests := testGuests()

	state := DefaultViewState()
	state.RSVPFilter = RSVPUnconfirmed

	got := names(ApplyFilters(guests, &state))
	// Boris answered through the legacy will-attend field, so only Carla
	// is truly unanswered.
	if !reflect.DeepEqual(got, []string{"Carla"}) {
		t.Errorf("unconfirmed include = %v, want [Carla]", got)
	}

	state.RSVPMode = ModeExclude
	got = names(ApplyFilters(guests, &state))
	if !reflect.DeepEqual(got, []string{"Amira", "Boris", "Dmitri"}) {
		t.Errorf("unconfirmed exclude = %v", got)
	}
}

func TestMatchSubEventsOrSemantics(t *testing.T) {
	guests := testGuests()
	state := DefaultViewState()
	state.SubEventIDs = []int64{2, 3}

	got := names(ApplyFilters(guests, &state))
	// Boris is assigned to 2, Carla to 3; any intersection keeps a guest.
	if !reflect.DeepEqual(got, []string{"Boris", "Carla"}) {
		t.Errorf("got %v, want [Boris Carla]", got)
	}
}

func TestSearchMatchesNameSubstring(t *testing.T) {
	guests := testGuests()
	state := DefaultViewState()
	state.Search = "  MIR "

	got := names(ApplyFilters(guests, &state))
	if !reflect.DeepEqual(got, []string{"Amira"}) {
		t.Errorf("got %v, want [Amira]", got)
	}
}

func TestDistinctCategoryValues(t *testing.T) {
	guests := testGuests()

	got := DistinctCategoryValues(guests, CategoryRelSource)
	if !reflect.DeepEqual(got, []string{"family", "friends", "work"}) {
		t.Errorf("relationship values = %v", got)
	}

	got = DistinctCategoryValues(guests, "cf:dietary")
	if !reflect.DeepEqual(got, []string{"vegan"}) {
		t.Errorf("custom field values = %v", got)
	}
}

func TestNormalizeCategoryValueResetsStaleValue(t *testing.T) {
	guests := testGuests()

	state := DefaultViewState()
	state.CategoryValue = "family"
	NormalizeCategoryValue(&state, guests)
	if state.CategoryValue != "family" {
		t.Errorf("valid value reset to %q", state.CategoryValue)
	}

	// Switching to the custom-field source makes "family" stale.
	state.CategorySource = "cf:dietary"
	NormalizeCategoryValue(&state, guests)
	if state.CategoryValue != FilterAll {
		t.Errorf("stale value = %q, want %q", state.CategoryValue, FilterAll)
	}
}
