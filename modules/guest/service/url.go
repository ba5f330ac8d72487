package service

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query parameter names for guest-list view state. Defaults are omitted on
// encode so an untouched view produces an empty query string; mode
// parameters are written only for "exclude", include being the implicit
// default.
const (
	paramRSVP         = "rsvp"
	paramRSVPMode     = "rsvpMode"
	paramCatSource    = "catSource"
	paramCatValue     = "catValue"
	paramCatMode      = "catMode"
	paramLegacyCat    = "cat"
	paramSent         = "sent"
	paramSentMode     = "sentMode"
	paramSubEvents    = "subEvents"
	paramSubEventMode = "subEventsMode"
	paramSort         = "sort"
	paramDir          = "dir"
)

// EncodeViewState serializes the non-default parts of a view state into
// query parameters. Sub-event IDs are sorted ascending and comma-joined so
// equivalent selections always produce the same URL. Search, selection and
// columns are deliberately not part of the URL.
func EncodeViewState(state *ViewState) url.Values {
	values := url.Values{}

	if state.rsvpFilterActive() {
		values.Set(paramRSVP, state.RSVPFilter)
		if state.RSVPMode == ModeExclude {
			values.Set(paramRSVPMode, string(ModeExclude))
		}
	}

	if state.categoryFilterActive() {
		if state.CategorySource != CategoryRelSource {
			values.Set(paramCatSource, state.CategorySource)
		}
		values.Set(paramCatValue, state.CategoryValue)
		if state.CategoryMode == ModeExclude {
			values.Set(paramCatMode, string(ModeExclude))
		}
	}

	if state.inviteSentFilterActive() {
		values.Set(paramSent, state.InviteSentFilter)
		if state.InviteSentMode == ModeExclude {
			values.Set(paramSentMode, string(ModeExclude))
		}
	}

	if state.subEventFilterActive() {
		ids := append([]int64(nil), state.SubEventIDs...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.FormatInt(id, 10)
		}
		values.Set(paramSubEvents, strings.Join(parts, ","))
		if state.SubEventMode == ModeExclude {
			values.Set(paramSubEventMode, string(ModeExclude))
		}
	}

	if state.SortKey != SortByName {
		values.Set(paramSort, string(state.SortKey))
	}
	if state.SortDir != SortAsc {
		values.Set(paramDir, string(state.SortDir))
	}

	return values
}

// DecodeViewState hydrates a view state from query parameters. Every field
// parses independently: a malformed value falls back to that field's
// default without blocking the rest. A legacy single "cat" parameter is
// honored as a relationship-source value.
func DecodeViewState(values url.Values) ViewState {
	state := DefaultViewState()

	if v := values.Get(paramRSVP); v != "" {
		switch v {
		case RSVPUnconfirmed, RSVPConfirmed, RSVPDeclined, FilterAll:
			state.RSVPFilter = v
		}
	}
	state.RSVPMode = decodeMode(values.Get(paramRSVPMode))

	if src := values.Get(paramCatSource); src == CategoryRelSource || strings.HasPrefix(src, CustomFieldPrefix) {
		state.CategorySource = src
	}
	if v := values.Get(paramCatValue); v != "" {
		state.CategoryValue = v
	} else if legacy := values.Get(paramLegacyCat); legacy != "" {
		// Pre-source URLs carried a bare relationship value.
		state.CategorySource = CategoryRelSource
		state.CategoryValue = legacy
	}
	state.CategoryMode = decodeMode(values.Get(paramCatMode))

	if v := values.Get(paramSent); v == InviteSentYes || v == InviteSentNo || v == FilterAll {
		state.InviteSentFilter = v
	}
	state.InviteSentMode = decodeMode(values.Get(paramSentMode))

	if raw := values.Get(paramSubEvents); raw != "" {
		if ids, ok := parseSubEventIDs(raw); ok {
			state.SubEventIDs = ids
		}
	}
	state.SubEventMode = decodeMode(values.Get(paramSubEventMode))

	if key := SortKey(values.Get(paramSort)); key.Valid() {
		state.SortKey = key
	}
	if dir := SortDir(values.Get(paramDir)); dir == SortAsc || dir == SortDesc {
		state.SortDir = dir
	}

	return state
}

func decodeMode(raw string) FilterMode {
	if FilterMode(raw) == ModeExclude {
		return ModeExclude
	}
	return ModeInclude
}

// parseSubEventIDs parses a comma-joined ID list. Any malformed token
// invalidates the whole field so it falls back to the default empty set.
func parseSubEventIDs(raw string) ([]int64, bool) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
