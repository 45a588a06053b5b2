// Package contact builds the hand-off links used to continue a booking
// outside the system.
package contact

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink returns a wa.me deep link with a prefilled message naming
// the mentor, the requesting user, and the session id, so the mentor can
// match the chat back to the session record.
func WhatsAppLink(phone, mentorName, userName, sessionID string) string {
	text := fmt.Sprintf("Hello %s, I'm %s and I'd like to request a mentorship session. My session ID is %s.", mentorName, userName, sessionID)
	return "https://wa.me/" + phone + "?text=" + encodeComponent(text)
}

// encodeComponent percent-encodes like JavaScript's encodeURIComponent:
// spaces become %20, never +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
