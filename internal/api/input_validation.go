package api

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegistration(input registerInput) string {
	if strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return "missing required fields"
	}
	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		return "invalid email"
	}
	return ""
}

func validateLogin(input loginInput) string {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return "missing required fields"
	}
	return ""
}
