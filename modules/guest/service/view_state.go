package service

import (
	"strings"

	appErrors "guestdesk/core/errors"

	"guestdesk/core/constants"
)

// FilterMode inverts which side of a predicate a dimension retains.
type FilterMode string

const (
	ModeInclude FilterMode = "include"
	ModeExclude FilterMode = "exclude"
)

// RSVP filter values. FilterAll deactivates a dimension regardless of mode.
const (
	FilterAll         = "all"
	RSVPUnconfirmed   = "unconfirmed"
	RSVPConfirmed     = "confirmed"
	RSVPDeclined      = "no"
	InviteSentYes     = "sent"
	InviteSentNo      = "unsent"
	CategoryRelSource = "relationship"
	// CustomFieldPrefix marks a category source backed by a custom field,
	// e.g. "cf:dietary".
	CustomFieldPrefix = "cf:"
)

type SortKey string

const (
	SortByName               SortKey = "name"
	SortByEmail              SortKey = "email"
	SortByCategory           SortKey = "category"
	SortByNotes              SortKey = "notes"
	SortByRSVPStatus         SortKey = "rsvp_status"
	SortByGuestsCount        SortKey = "guests_count"
	SortByInviteSent         SortKey = "invite_sent"
	SortBySubEventsAssigned  SortKey = "sub_events_assigned"
	SortBySubEventsAttending SortKey = "sub_events_attending"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByEmail, SortByCategory, SortByNotes, SortByRSVPStatus,
		SortByGuestsCount, SortByInviteSent, SortBySubEventsAssigned, SortBySubEventsAttending:
		return true
	}
	return false
}

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ViewState is the full filter/sort/column state of one guest-list view.
// It is the single source of truth the URL codec, the column store and the
// projection pipeline all read from.
type ViewState struct {
	Search string

	RSVPFilter string
	RSVPMode   FilterMode

	// CategorySource is either "relationship" or "cf:<key>".
	CategorySource string
	CategoryValue  string
	CategoryMode   FilterMode

	InviteSentFilter string
	InviteSentMode   FilterMode

	SubEventIDs  []int64
	SubEventMode FilterMode

	SortKey SortKey
	SortDir SortDir

	// Columns are the host-configurable middle columns, ordered, capped at
	// constants.MaxVisibleColumns. Not reset by ResetFilters.
	Columns []string
}

// DefaultColumns is the middle-column set shown before a host customizes
// anything.
var DefaultColumns = []string{"phone", "rsvp_status", "guests_count", "invite_sent"}

func DefaultViewState() ViewState {
	return ViewState{
		RSVPFilter:       FilterAll,
		RSVPMode:         ModeInclude,
		CategorySource:   CategoryRelSource,
		CategoryValue:    FilterAll,
		CategoryMode:     ModeInclude,
		InviteSentFilter: FilterAll,
		InviteSentMode:   ModeInclude,
		SubEventMode:     ModeInclude,
		SortKey:          SortByName,
		SortDir:          SortAsc,
		Columns:          append([]string(nil), DefaultColumns...),
	}
}

// ResetFilters clears every filter dimension but deliberately leaves sort
// and columns alone.
func (s *ViewState) ResetFilters() {
	d := DefaultViewState()
	s.Search = ""
	s.RSVPFilter, s.RSVPMode = d.RSVPFilter, d.RSVPMode
	s.CategorySource, s.CategoryValue, s.CategoryMode = d.CategorySource, d.CategoryValue, d.CategoryMode
	s.InviteSentFilter, s.InviteSentMode = d.InviteSentFilter, d.InviteSentMode
	s.SubEventIDs, s.SubEventMode = nil, d.SubEventMode
}

// AddColumn appends a visible column. Adding beyond the cap is rejected
// outright; the existing set is left untouched.
func (s *ViewState) AddColumn(column string) error {
	for _, c := range s.Columns {
		if c == column {
			return nil
		}
	}
	if len(s.Columns) >= constants.MaxVisibleColumns {
		return appErrors.NewAppError(appErrors.ErrInvalidInput, "column limit reached", nil)
	}
	s.Columns = append(s.Columns, column)
	return nil
}

func (s *ViewState) RemoveColumn(column string) {
	for i, c := range s.Columns {
		if c == column {
			s.Columns = append(s.Columns[:i], s.Columns[i+1:]...)
			return
		}
	}
}

// SetColumns replaces the column set wholesale, rejecting oversized input.
func (s *ViewState) SetColumns(columns []string) error {
	if len(columns) > constants.MaxVisibleColumns {
		return appErrors.NewAppError(appErrors.ErrInvalidInput, "column limit reached", nil)
	}
	s.Columns = append([]string(nil), columns...)
	return nil
}

// ToggleSort re-sorting on the current key flips direction; a new key
// resets to ascending.
func (s *ViewState) ToggleSort(key SortKey) {
	if !key.Valid() {
		return
	}
	if s.SortKey == key {
		if s.SortDir == SortAsc {
			s.SortDir = SortDesc
		} else {
			s.SortDir = SortAsc
		}
		return
	}
	s.SortKey = key
	s.SortDir = SortAsc
}

// CustomFieldKey returns the custom-field key when the category source is
// field-backed, and "" for the relationship source.
func (s *ViewState) CustomFieldKey() string {
	if strings.HasPrefix(s.CategorySource, CustomFieldPrefix) {
		return strings.TrimPrefix(s.CategorySource, CustomFieldPrefix)
	}
	return ""
}

// rsvpFilterActive and friends: the "all" value (or an empty set) makes a
// dimension inactive regardless of its mode.
func (s *ViewState) rsvpFilterActive() bool {
	return s.RSVPFilter != "" && s.RSVPFilter != FilterAll
}

func (s *ViewState) categoryFilterActive() bool {
	return s.CategoryValue != "" && s.CategoryValue != FilterAll
}

func (s *ViewState) inviteSentFilterActive() bool {
	return s.InviteSentFilter != "" && s.InviteSentFilter != FilterAll
}

func (s *ViewState) subEventFilterActive() bool {
	return len(s.SubEventIDs) > 0
}

func (s *ViewState) searchActive() bool {
	return strings.TrimSpace(s.Search) != ""
}
