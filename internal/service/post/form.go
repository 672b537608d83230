package post

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Form field names.
const (
	FieldText  = "text"
	FieldGroup = "group"
)

// Validation messages.
const (
	MsgRequired      = "required"
	MsgInvalidChoice = "select a valid choice"
	MsgNullCharacter = "null characters are not allowed"
	MsgInvalidText   = "text is not valid UTF-8"
)

// FieldKind selects how a field is rendered and validated.
type FieldKind int

const (
	KindText FieldKind = iota
	KindChoice
)

// Field describes one input of the post form.
type Field struct {
	Name     string
	Kind     FieldKind
	Label    string
	Required bool
	HelpText string
}

// Schema is the field list of the post form, in render order.
var Schema = []Field{
	{
		Name:     FieldText,
		Kind:     KindText,
		Label:    "Post text",
		Required: true,
		HelpText: "Text of the new post",
	},
	{
		Name:     FieldGroup,
		Kind:     KindChoice,
		Label:    "Group",
		HelpText: "Group the post will belong to",
	},
}

// PostInput is the submitted post form. Group is a slug; empty means no group.
type PostInput struct {
	Text  string
	Group string
}

func (i PostInput) normalized() PostInput {
	return PostInput{
		Text:  strings.TrimSpace(i.Text),
		Group: strings.TrimSpace(i.Group),
	}
}

// Validate checks the input against Schema and the current group choices.
// It collects every failing field into a *domain.ValidationError.
func Validate(input PostInput, choices []domain.Group) error {
	input = input.normalized()

	var errs []domain.FieldError

	switch {
	case input.Text == "":
		errs = append(errs, domain.FieldError{Field: FieldText, Message: MsgRequired})
	case !utf8.ValidString(input.Text):
		errs = append(errs, domain.FieldError{Field: FieldText, Message: MsgInvalidText})
	case strings.ContainsRune(input.Text, 0):
		errs = append(errs, domain.FieldError{Field: FieldText, Message: MsgNullCharacter})
	}
	if input.Group != "" && !hasChoice(choices, input.Group) {
		errs = append(errs, domain.FieldError{Field: FieldGroup, Message: MsgInvalidChoice})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func hasChoice(choices []domain.Group, slug string) bool {
	for _, g := range choices {
		if g.Slug == slug {
			return true
		}
	}
	return false
}

// Form is a post form ready for rendering: schema, bound values,
// per-field errors and the group choices.
type Form struct {
	Fields  []Field
	Values  PostInput
	Errors  map[string][]string
	Choices []domain.Group
	IsEdit  bool
	PostID  int64
}

// NewForm returns an unbound form.
func NewForm(choices []domain.Group) *Form {
	return &Form{
		Fields:  Schema,
		Errors:  map[string][]string{},
		Choices: choices,
	}
}

// BindForm returns a form holding the submitted values.
func BindForm(input PostInput, choices []domain.Group) *Form {
	f := NewForm(choices)
	f.Values = input
	return f
}

// SetErrors copies field messages from a validation error onto the form.
// Errors of any other kind are ignored.
func (f *Form) SetErrors(err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return
	}
	for field, msgs := range ve.ByField() {
		f.Errors[field] = append(f.Errors[field], msgs...)
	}
}

// HasErrors reports whether any field failed validation.
func (f *Form) HasErrors() bool { return len(f.Errors) > 0 }

// FieldErrors returns the messages for one field.
func (f *Form) FieldErrors(name string) []string { return f.Errors[name] }

// NonFieldErrors returns the messages that belong to the whole form.
func (f *Form) NonFieldErrors() []string { return f.Errors[domain.NonFieldErrors] }

// Selected reports whether slug is the bound group choice.
func (f *Form) Selected(slug string) bool { return f.Values.Group == slug }
