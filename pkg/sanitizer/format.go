package sanitizer

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are stored and looked up in this form.
func NormalizeEmail(email string) string {
	return TrimToLower(email)
}

// MaskEmail hides the local part except its first character, keeping the domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
