package utils

import "strings"

// DisplayName picks the name an admin action is attributed under: the explicit
// name, else the local part of the email, else a fixed placeholder.
func DisplayName(name, email string) string {
	if name != "" {
		return name
	}
	if at := strings.IndexByte(email, '@'); at >= 0 {
		email = email[:at]
	}
	if email != "" {
		return email
	}
	return "Unknown Admin"
}

// MaskEmail hides most of an email address for log output, keeping the first
// character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
