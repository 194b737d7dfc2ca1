package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ttacon/libphonenumber"

	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
)

// DefaultPhoneRegion is assumed for numbers typed without a country code.
const DefaultPhoneRegion = "BR"

// WhatsAppLink returns a wa.me link that opens a chat with phone, prefilled
// with message. An empty phone yields an empty link.
func WhatsAppLink(phone, message string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", nil
	}
	num, err := libphonenumber.Parse(phone, DefaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", quotedomain.ErrInvalidPhone, phone, err)
	}
	if !libphonenumber.IsPossibleNumber(num) {
		return "", fmt.Errorf("%w: %q", quotedomain.ErrInvalidPhone, phone)
	}
	digits := strings.TrimPrefix(libphonenumber.Format(num, libphonenumber.E164), "+")
	// wa.me renders "+" literally, so spaces go out as %20.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text, nil
}
