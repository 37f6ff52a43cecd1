package util

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	phonePattern    = regexp.MustCompile(`^(\+7|8)[0-9]{10}$`)
	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	imageURLPattern = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

const MinPasswordLength = 6

func IsValidEmail(val string) bool {
	addr, err := mail.ParseAddress(val)
	return err == nil && addr.Address == val && strings.Contains(val, "@")
}

func IsValidPhone(val string) bool {
	return phonePattern.MatchString(val)
}

func IsValidFullName(val string) bool {
	return strings.TrimSpace(val) != "" && fullNamePattern.MatchString(val)
}

func IsValidPassword(val string) bool {
	return len(val) >= MinPasswordLength
}

func IsImageURL(val string) bool {
	return imageURLPattern.MatchString(val)
}

func IsBlank(val string) bool {
	return strings.TrimSpace(val) == ""
}
