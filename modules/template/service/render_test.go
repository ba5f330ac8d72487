package service

import (
	"testing"

	guestEntity "guestdesk/modules/guest/entity"
)

func TestRender(t *testing.T) {
	guest := &guestEntity.Guest{Name: "Amira"}

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"all placeholders",
			"Hi {{name}}, you are invited to {{event_title}}: {{invite_link}} / {{rsvp_link}}",
			"Hi Amira, you are invited to Garden Party: https://x/invite / https://x/rsvp",
		},
		{
			"unknown placeholder passes through",
			"Hi {{name}}, table {{table_number}}",
			"Hi Amira, table {{table_number}}",
		},
		{
			"repeated placeholder",
			"{{name}} {{name}}",
			"Amira Amira",
		},
		{
			"no placeholders",
			"plain text",
			"plain text",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Render(tc.body, guest, "Garden Party", "https://x/invite", "https://x/rsvp")
			if got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		countryCode string
		number      string
		want        string
	}{
		{"+972", "50-123 4567", "972501234567"},
		{"+1", "(555) 010-9999", "15550109999"},
		{"", "", ""},
		{"49", "170 0000000", "491700000000"},
	}

	for _, tc := range tests {
		if got := NormalizePhone(tc.countryCode, tc.number); got != tc.want {
			t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tc.countryCode, tc.number, got, tc.want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("+972", "50-1234567", "Hi Amira & Boris, see https://x/invite")
	want := "https://wa.me/972501234567?text=Hi+Amira+%26+Boris%2C+see+https%3A%2F%2Fx%2Finvite"
	if got != want {
		t.Errorf("WhatsAppLink() = %q, want %q", got, want)
	}

	if got := WhatsAppLink("", "", "anything"); got != "" {
		t.Errorf("empty phone should yield empty link, got %q", got)
	}
}
