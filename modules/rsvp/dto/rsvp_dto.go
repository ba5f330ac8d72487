package dto

import (
	guestEntity "guestdesk/modules/guest/entity"
	"guestdesk/modules/rsvp/entity"
)

// SubEventAnswer is one per-sub-event answer in a PER_SUBEVENT submission.
type SubEventAnswer struct {
	SubEventID int64  `json:"sub_event_id"`
	Answer     string `json:"answer"`
}

// SubmitRSVPRequest is the public RSVP submission body. For ONE_TAP_ALL
// events only Answer is read; for PER_SUBEVENT events SubEventAnswers
// carries one entry per answered sub-event.
type SubmitRSVPRequest struct {
	Answer          string           `json:"answer"`
	GuestsCount     *int             `json:"guests_count"`
	SubEventAnswers []SubEventAnswer `json:"sub_event_answers"`
}

// SubmitRSVPResponse echoes the authoritative stored state so the caller
// can render it without a follow-up fetch.
type SubmitRSVPResponse struct {
	Guest   *guestEntity.Guest           `json:"guest"`
	Answers []entity.GuestSubEventAnswer `json:"answers,omitempty"`
}

// SubmitOtherRSVPRequest is an RSVP from someone not on the guest list.
type SubmitOtherRSVPRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Answer      string `json:"answer"`
	GuestsCount *int   `json:"guests_count"`
	Source      string `json:"source"`
}

type OtherGuestListResponse struct {
	Guests  []guestEntity.OtherGuest `json:"guests"`
	Removed []guestEntity.OtherGuest `json:"removed"`
	Total   int                      `json:"total"`
}
