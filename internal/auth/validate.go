package auth

import "regexp"

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidMobile accepts exactly 10 digits with a leading digit of 6-9.
func ValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}
