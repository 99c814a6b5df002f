package publication

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is matched by every *ValidationError.
var ErrInvalid = errors.New("invalid publication record")

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("singleline", validateSingleLine)
}

// validateSingleLine rejects line breaks, which would split a catalog file record.
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// Record is the raw input a publication is built from. Empty strings are
// accepted: an absent title or author is indistinguishable from "".
type Record struct {
	Title  string `validate:"singleline"`
	Author string `validate:"singleline"`
	Year   int
}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when a Record cannot be used to build a publication.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// NewRecord coerces textual input into a Record. The year must be a base-10 integer.
func NewRecord(title, author, year string) (Record, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Record{}, &ValidationError{Fields: []FieldError{{
			Field:   "year",
			Message: fmt.Sprintf("year must be an integer, got %q", year),
		}}}
	}
	r := Record{Title: title, Author: author, Year: y}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks the record's struct tags.
func (r Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		var message string
		switch fe.Tag() {
		case "singleline":
			message = fmt.Sprintf("%s must not contain line breaks", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		out.Fields = append(out.Fields, FieldError{Field: field, Message: message})
	}
	return out
}
