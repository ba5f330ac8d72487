package service

import (
	"net/url"
	"reflect"
	"testing"
)

func TestEncodeDefaultStateIsEmpty(t *testing.T) {
	state := DefaultViewState()
	if got := EncodeViewState(&state); len(got) != 0 {
		t.Errorf("default state encoded to %q, want empty", got.Encode())
	}
}

func TestEncodeOmitsIncludeMode(t *testing.T) {
	state := DefaultViewState()
	state.RSVPFilter = RSVPConfirmed

	values := EncodeViewState(&state)
	if values.Get("rsvp") != RSVPConfirmed {
		t.Errorf("rsvp = %q", values.Get("rsvp"))
	}
	if values.Has("rsvpMode") {
		t.Error("include mode should be omitted")
	}

	state.RSVPMode = ModeExclude
	values = EncodeViewState(&state)
	if values.Get("rsvpMode") != string(ModeExclude) {
		t.Errorf("rsvpMode = %q, want exclude", values.Get("rsvpMode"))
	}
}

func TestEncodeSubEventIDsSortedAscending(t *testing.T) {
	state := DefaultViewState()
	state.SubEventIDs = []int64{9, 2, 5}

	values := EncodeViewState(&state)
	if got := values.Get("subEvents"); got != "2,5,9" {
		t.Errorf("subEvents = %q, want 2,5,9", got)
	}
}

func TestViewStateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state func() ViewState
	}{
		{"default", DefaultViewState},
		{"rsvp exclude", func() ViewState {
			s := DefaultViewState()
			s.RSVPFilter = RSVPUnconfirmed
			s.RSVPMode = ModeExclude
			return s
		}},
		{"custom field category", func() ViewState {
			s := DefaultViewState()
			s.CategorySource = "cf:dietary"
			s.CategoryValue = "vegan"
			return s
		}},
		{"sub events with sort", func() ViewState {
			s := DefaultViewState()
			s.SubEventIDs = []int64{2, 5, 9}
			s.SubEventMode = ModeExclude
			s.SortKey = SortByGuestsCount
			s.SortDir = SortDesc
			return s
		}},
		{"invite sent", func() ViewState {
			s := DefaultViewState()
			s.InviteSentFilter = InviteSentNo
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state()
			encoded := EncodeViewState(&state)
			decoded := DecodeViewState(encoded)
			reencoded := EncodeViewState(&decoded)

			// Encode-decode-encode must be a fixed point.
			if !reflect.DeepEqual(encoded, reencoded) {
				t.Errorf("round trip changed the URL: %q -> %q", encoded.Encode(), reencoded.Encode())
			}
		})
	}
}

func TestDecodeLegacyCatParam(t *testing.T) {
	values := url.Values{}
	values.Set("cat", "family")

	state := DecodeViewState(values)
	if state.CategorySource != CategoryRelSource {
		t.Errorf("source = %q, want relationship", state.CategorySource)
	}
	if state.CategoryValue != "family" {
		t.Errorf("value = %q, want family", state.CategoryValue)
	}
}

func TestDecodeMalformedFieldFallsBackAlone(t *testing.T) {
	values := url.Values{}
	values.Set("subEvents", "2,oops,9")
	values.Set("rsvp", RSVPConfirmed)
	values.Set("sort", "bogus")
	values.Set("dir", string(SortDesc))

	state := DecodeViewState(values)

	if state.SubEventIDs != nil {
		t.Errorf("malformed subEvents parsed to %v, want nil", state.SubEventIDs)
	}
	if state.RSVPFilter != RSVPConfirmed {
		t.Errorf("valid rsvp lost: %q", state.RSVPFilter)
	}
	if state.SortKey != SortByName {
		t.Errorf("invalid sort key accepted: %q", state.SortKey)
	}
	if state.SortDir != SortDesc {
		t.Errorf("valid dir lost: %q", state.SortDir)
	}
}

func TestDecodeRejectsUnknownValues(t *testing.T) {
	values := url.Values{}
	values.Set("rsvp", "whenever")
	values.Set("sent", "perhaps")
	values.Set("catSource", "nonsense")

	state := DecodeViewState(values)
	d := DefaultViewState()
	if state.RSVPFilter != d.RSVPFilter || state.InviteSentFilter != d.InviteSentFilter ||
		state.CategorySource != d.CategorySource {
		t.Errorf("unknown values accepted: %+v", state)
	}
}

func TestDecodeRejectsNonPositiveSubEventIDs(t *testing.T) {
	for _, raw := range []string{"0", "-3", "2,0", "2,-1,5"} {
		values := url.Values{}
		values.Set("subEvents", raw)
		if state := DecodeViewState(values); state.SubEventIDs != nil {
			t.Errorf("raw %q parsed to %v, want nil", raw, state.SubEventIDs)
		}
	}
}
