package service

import (
	"reflect"
	"testing"
)

func TestAddColumnCap(t *testing.T) {
	state := DefaultViewState()
	if err := state.SetColumns([]string{"a", "b", "c", "d", "e"}); err != nil {
		t.Fatalf("SetColumns: %v", err)
	}

	if err := state.AddColumn("f"); err == nil {
		t.Fatal("expected error adding a sixth column")
	}
	want := []string{"a", "b", "c", "d", "e"}
	if !reflect.DeepEqual(state.Columns, want) {
		t.Errorf("columns mutated on rejected add: %v", state.Columns)
	}
}

func TestAddColumnDuplicateIsNoOp(t *testing.T) {
	state := DefaultViewState()
	if err := state.SetColumns([]string{"a", "b", "c", "d", "e"}); err != nil {
		t.Fatalf("SetColumns: %v", err)
	}

	// Already present, so no error even at the cap.
	if err := state.AddColumn("c"); err != nil {
		t.Fatalf("duplicate add should be a no-op, got %v", err)
	}
	if len(state.Columns) != 5 {
		t.Errorf("columns = %v, want unchanged", state.Columns)
	}
}

func TestSetColumnsRejectsOversized(t *testing.T) {
	state := DefaultViewState()
	before := append([]string(nil), state.Columns...)

	if err := state.SetColumns([]string{"a", "b", "c", "d", "e", "f"}); err == nil {
		t.Fatal("expected error for six columns")
	}
	if !reflect.DeepEqual(state.Columns, before) {
		t.Errorf("columns mutated on rejected set: %v", state.Columns)
	}
}

func TestRemoveColumn(t *testing.T) {
	state := DefaultViewState()
	state.Columns = []string{"a", "b", "c"}

	state.RemoveColumn("b")
	if !reflect.DeepEqual(state.Columns, []string{"a", "c"}) {
		t.Errorf("columns = %v", state.Columns)
	}

	state.RemoveColumn("missing")
	if !reflect.DeepEqual(state.Columns, []string{"a", "c"}) {
		t.Errorf("removing an absent column mutated the set: %v", state.Columns)
	}
}

func TestToggleSort(t *testing.T) {
	tests := []struct {
		name     string
		startKey SortKey
		startDir SortDir
		toggle   SortKey
		wantKey  SortKey
		wantDir  SortDir
	}{
		{"same key flips asc to desc", SortByName, SortAsc, SortByName, SortByName, SortDesc},
		{"same key flips desc to asc", SortByName, SortDesc, SortByName, SortByName, SortAsc},
		{"new key resets to asc", SortByName, SortDesc, SortByEmail, SortByEmail, SortAsc},
		{"invalid key ignored", SortByName, SortDesc, SortKey("bogus"), SortByName, SortDesc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := DefaultViewState()
			state.SortKey, state.SortDir = tt.startKey, tt.startDir
			state.ToggleSort(tt.toggle)
			if state.SortKey != tt.wantKey || state.SortDir != tt.wantDir {
				t.Errorf("got %s/%s, want %s/%s", state.SortKey, state.SortDir, tt.wantKey, tt.wantDir)
			}
		})
	}
}

func TestResetFiltersKeepsSortAndColumns(t *testing.T) {
	state := DefaultViewState()
	state.Search = "ann"
	state.RSVPFilter = RSVPConfirmed
	state.RSVPMode = ModeExclude
	state.CategorySource = "cf:dietary"
	state.CategoryValue = "vegan"
	state.InviteSentFilter = InviteSentNo
	state.SubEventIDs = []int64{3, 7}
	state.SubEventMode = ModeExclude
	state.SortKey = SortByGuestsCount
	state.SortDir = SortDesc
	state.Columns = []string{"email"}

	state.ResetFilters()

	d := DefaultViewState()
	if state.Search != "" || state.RSVPFilter != d.RSVPFilter || state.RSVPMode != d.RSVPMode ||
		state.CategorySource != d.CategorySource || state.CategoryValue != d.CategoryValue ||
		state.InviteSentFilter != d.InviteSentFilter || state.SubEventIDs != nil ||
		state.SubEventMode != d.SubEventMode {
		t.Errorf("filters not reset: %+v", state)
	}
	if state.SortKey != SortByGuestsCount || state.SortDir != SortDesc {
		t.Errorf("sort was reset: %s/%s", state.SortKey, state.SortDir)
	}
	if !reflect.DeepEqual(state.Columns, []string{"email"}) {
		t.Errorf("columns were reset: %v", state.Columns)
	}
}

func TestCustomFieldKey(t *testing.T) {
	state := DefaultViewState()
	if key := state.CustomFieldKey(); key != "" {
		t.Errorf("relationship source key = %q, want empty", key)
	}
	state.CategorySource = "cf:dietary"
	if key := state.CustomFieldKey(); key != "dietary" {
		t.Errorf("key = %q, want dietary", key)
	}
}
