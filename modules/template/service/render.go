package service

import (
	"net/url"
	"strings"

	guestEntity "guestdesk/modules/guest/entity"
)

// Render substitutes the known placeholders with guest and event data.
// Unknown placeholders pass through untouched.
func Render(body string, guest *guestEntity.Guest, eventTitle, inviteLink, rsvpLink string) string {
	replacer := strings.NewReplacer(
		"{{name}}", guest.Name,
		"{{event_title}}", eventTitle,
		"{{invite_link}}", inviteLink,
		"{{rsvp_link}}", rsvpLink,
	)
	return replacer.Replace(body)
}

// NormalizePhone strips formatting so the number can go into a wa.me link.
func NormalizePhone(countryCode, number string) string {
	phone := countryCode + number
	phone = strings.ReplaceAll(phone, "+", "")
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, "(", "")
	phone = strings.ReplaceAll(phone, ")", "")
	return phone
}

// WhatsAppLink builds a click-to-chat URL with the rendered body prefilled.
func WhatsAppLink(countryCode, number, body string) string {
	phone := NormalizePhone(countryCode, number)
	if phone == "" {
		return ""
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(body)
}
