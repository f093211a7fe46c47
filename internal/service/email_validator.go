package service

import "regexp"

// emailPattern mirrors the storefront's historical check: no
// whitespace, a single "@", and at least one "." in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether correo satisfies the storefront email
// format.
func IsValidEmail(correo string) bool {
	return emailPattern.MatchString(correo)
}
