// Package util contiene helpers chicos sin dependencias del dominio.
package util

import "strings"

// MaskEmail enmascara una dirección para logs: "mentor@example.com" → "m…@e….com".
// Acepta la forma con display name ("Name <a@b.c>") y enmascara sólo la dirección.
func MaskEmail(s string) string {
	s = strings.TrimSpace(s)
	if lt := strings.LastIndexByte(s, '<'); lt >= 0 && strings.HasSuffix(s, ">") {
		s = s[lt+1 : len(s)-1]
	}
	s = strings.ToLower(strings.TrimSpace(s))

	at := strings.IndexByte(s, '@')
	if at <= 0 {
		switch {
		case s == "":
			return ""
		case len(s) <= 3:
			return "***"
		}
		return s[:1] + "…" + s[len(s)-1:]
	}

	user, domain := s[:at], s[at+1:]
	if len(user) > 1 {
		user = user[:1] + "…"
	}
	parts := strings.Split(domain, ".")
	if len(parts[0]) > 1 {
		parts[0] = parts[0][:1] + "…"
	}
	return user + "@" + strings.Join(parts, ".")
}
