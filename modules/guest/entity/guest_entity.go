package entity

import (
	"time"

	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RSVPAnswer is a tri-state answer. The zero value (absent) means the
// guest has not responded.
type RSVPAnswer string

const (
	RSVPYes   RSVPAnswer = "yes"
	RSVPNo    RSVPAnswer = "no"
	RSVPMaybe RSVPAnswer = "maybe"
)

func (a RSVPAnswer) Valid() bool {
	return a == RSVPYes || a == RSVPNo || a == RSVPMaybe
}

// Guest is one invited person for one event. RSVPWillAttend is the legacy
// single-answer field kept for events created before per-status tracking;
// both it and RSVPStatus feed the confirmed/unconfirmed filters.
type Guest struct {
	ID               uuid.UUID            `db:"id" json:"id"`
	EventID          uuid.UUID            `db:"event_id" json:"event_id"`
	PublicCode       string               `db:"public_code" json:"public_code"`
	Name             string               `db:"name" json:"name"`
	PhoneCountryCode string               `db:"phone_country_code" json:"phone_country_code"`
	PhoneNumber      string               `db:"phone_number" json:"phone_number"`
	PhoneCountry     string               `db:"phone_country" json:"phone_country,omitempty"`
	Email            string               `db:"email" json:"email,omitempty"`
	Relationship     string               `db:"relationship" json:"relationship,omitempty"`
	Notes            string               `db:"notes" json:"notes,omitempty"`
	CustomFields     coreEntity.StringMap `db:"custom_fields" json:"custom_fields"`
	RSVPStatus       *RSVPAnswer          `db:"rsvp_status" json:"rsvp_status"`
	RSVPWillAttend   *RSVPAnswer          `db:"rsvp_will_attend" json:"rsvp_will_attend"`
	RSVPGuestsCount  *int                 `db:"rsvp_guests_count" json:"rsvp_guests_count"`
	InvitationSent   bool                 `db:"invitation_sent" json:"invitation_sent"`
	InvitationSentAt *time.Time           `db:"invitation_sent_at" json:"invitation_sent_at"`
	Deleted          bool                 `db:"deleted" json:"deleted"`
	DeletedAt        *time.Time           `db:"deleted_at" json:"deleted_at"`
	SubEventInvites  pq.Int64Array        `db:"sub_event_invites" json:"sub_event_invites"`
	InviteViewsCount int                  `db:"invite_views_count" json:"invite_views_count"`
	RSVPViewsCount   int                  `db:"rsvp_views_count" json:"rsvp_views_count"`
	LastInviteView   *time.Time           `db:"last_invite_view" json:"last_invite_view"`
	LastRSVPView     *time.Time           `db:"last_rsvp_view" json:"last_rsvp_view"`
	coreEntity.BaseEntity
}

// ViewedInvite reports whether the guest has opened their invite page.
func (g *Guest) ViewedInvite() bool { return g.InviteViewsCount > 0 }

// ViewedRSVP reports whether the guest has opened the RSVP page.
func (g *Guest) ViewedRSVP() bool { return g.RSVPViewsCount > 0 }

// EffectiveAnswer resolves the tri-state answer, preferring the status
// field and falling back to the legacy will-attend value.
func (g *Guest) EffectiveAnswer() RSVPAnswer {
	if g.RSVPStatus != nil && g.RSVPStatus.Valid() {
		return *g.RSVPStatus
	}
	if g.RSVPWillAttend != nil && g.RSVPWillAttend.Valid() {
		return *g.RSVPWillAttend
	}
	return ""
}

// Unconfirmed reports whether the guest has no answer at all.
func (g *Guest) Unconfirmed() bool { return g.EffectiveAnswer() == "" }

// InvitedTo reports membership of one sub-event in the guest's assignment
// set.
func (g *Guest) InvitedTo(subEventID int64) bool {
	for _, id := range g.SubEventInvites {
		if id == subEventID {
			return true
		}
	}
	return false
}

// SourceChannel records how an unlisted guest reached the RSVP page.
type SourceChannel string

const (
	SourceQR     SourceChannel = "QR"
	SourceLink   SourceChannel = "LINK"
	SourceManual SourceChannel = "MANUAL"
)

// OtherGuest is a person who submitted an RSVP without being on the host's
// list. Same soft-delete lifecycle as core guests.
type OtherGuest struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	EventID     uuid.UUID     `db:"event_id" json:"event_id"`
	Name        string        `db:"name" json:"name"`
	Phone       string        `db:"phone" json:"phone,omitempty"`
	Source      SourceChannel `db:"source" json:"source"`
	WillAttend  *RSVPAnswer   `db:"will_attend" json:"will_attend"`
	GuestsCount *int          `db:"guests_count" json:"guests_count"`
	Deleted     bool          `db:"deleted" json:"deleted"`
	DeletedAt   *time.Time    `db:"deleted_at" json:"deleted_at"`
	coreEntity.BaseEntity
}
