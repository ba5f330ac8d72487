package service

import (
	"reflect"
	"testing"

	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
)

func intPtr(n int) *int { return &n }

func TestSortByNameFoldsCaseAndAccents(t *testing.T) {
	guests := []entity.Guest{
		{Name: "élodie"},
		{Name: "Zak"},
		{Name: "Elias"},
		{Name: "ana"},
	}
	state := DefaultViewState()
	ApplySort(guests, &state, nil)

	want := []string{"ana", "Elias", "élodie", "Zak"}
	if got := names(guests); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortReversalPreservesTieGroups(t *testing.T) {
	guests := []entity.Guest{
		{Name: "Cleo", RSVPGuestsCount: intPtr(2)},
		{Name: "Abe", RSVPGuestsCount: intPtr(2)},
		{Name: "Bea", RSVPGuestsCount: intPtr(1)},
		{Name: "Dov", RSVPGuestsCount: intPtr(1)},
	}

	state := DefaultViewState()
	state.SortKey = SortByGuestsCount

	ApplySort(guests, &state, nil)
	wantAsc := []string{"Bea", "Dov", "Abe", "Cleo"}
	if got := names(guests); !reflect.DeepEqual(got, wantAsc) {
		t.Fatalf("asc = %v, want %v", got, wantAsc)
	}

	// Reversing flips the groups but not the name order inside each
	// group: the tiebreak is not direction-sensitive.
	state.SortDir = SortDesc
	ApplySort(guests, &state, nil)
	wantDesc := []string{"Abe", "Cleo", "Bea", "Dov"}
	if got := names(guests); !reflect.DeepEqual(got, wantDesc) {
		t.Errorf("desc = %v, want %v", got, wantDesc)
	}
}

func TestNullHeadcountSortsBeforeZero(t *testing.T) {
	guests := []entity.Guest{
		{Name: "Abe", RSVPGuestsCount: intPtr(0)},
		{Name: "Bea", RSVPGuestsCount: nil},
		{Name: "Cleo", RSVPGuestsCount: intPtr(3)},
	}

	state := DefaultViewState()
	state.SortKey = SortByGuestsCount
	ApplySort(guests, &state, nil)

	want := []string{"Bea", "Abe", "Cleo"}
	if got := names(guests); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortByRSVPStatusOrdinal(t *testing.T) {
	guests := []entity.Guest{
		{Name: "Abe", RSVPStatus: answer(entity.RSVPNo)},
		{Name: "Bea", RSVPStatus: answer(entity.RSVPMaybe)},
		{Name: "Cleo"},
		{Name: "Dov", RSVPWillAttend: answer(entity.RSVPYes)},
	}

	state := DefaultViewState()
	state.SortKey = SortByRSVPStatus
	ApplySort(guests, &state, nil)

	// Unanswered first, then yes, maybe, no. Dov's legacy field counts.
	want := []string{"Cleo", "Dov", "Bea", "Abe"}
	if got := names(guests); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortBySubEventsAttending(t *testing.T) {
	guests := testGuests()

	perName := map[string]int{"Amira": 2, "Boris": 0, "Carla": 1, "Dmitri": 3}
	attendingCounts := make(map[uuid.UUID]int, len(guests))
	for i := range guests {
		attendingCounts[guests[i].ID] = perName[guests[i].Name]
	}

	state := DefaultViewState()
	state.SortKey = SortBySubEventsAttending
	state.SortDir = SortDesc
	ApplySort(guests, &state, attendingCounts)

	want := []string{"Dmitri", "Amira", "Carla", "Boris"}
	if got := names(guests); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
