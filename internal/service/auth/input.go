package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"

	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

// usernameRe allows letters, digits and @ . + - _ up to 150 characters.
var usernameRe = regexp.MustCompile(`^[\w.@+-]{1,150}$`)

// RegisterInput holds parameters for the signup form.
type RegisterInput struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// Validate validates the signup input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: FieldUsername, Message: "required"})
	case !usernameRe.MatchString(i.Username):
		errs = append(errs, domain.FieldError{Field: FieldUsername, Message: "enter a valid username: up to 150 letters, digits and @/./+/-/_"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: FieldPassword, Message: "required"})
	case utf8.RuneCountInString(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: FieldPassword, Message: "must be at least 8 characters"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: FieldPassword, Message: "too long"})
	}

	if i.PasswordConfirm == "" {
		errs = append(errs, domain.FieldError{Field: FieldPasswordConfirm, Message: "required"})
	} else if i.Password != "" && i.PasswordConfirm != i.Password {
		errs = append(errs, domain.FieldError{Field: FieldPasswordConfirm, Message: "the two password fields didn't match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login form.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: FieldUsername, Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: FieldPassword, Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func normalizeUsername(s string) string {
	return strings.TrimSpace(s)
}
