// Package forms binds and validates the HTML forms of the application. Every
// Validate method returns the field scoped messages, already translated.
package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"tareas/internal/auth"
	"tareas/internal/i18n"
)

// NonFieldErrors is the key for messages that belong to the whole form.
const NonFieldErrors = "__all__"

// Errors maps form field names to their messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

func (e Errors) Get(field string) []string {
	return e[field]
}

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// check runs the struct tag rules and converts the failures to messages.
func check(form any, tr *i18n.Translator) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add(NonFieldErrors, tr.T(i18n.MsgInvalidForm))
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe, tr))
	}
	return errs
}

func message(fe validator.FieldError, tr *i18n.Translator) string {
	switch fe.Tag() {
	case "required":
		return tr.T(i18n.MsgRequired)
	case "max":
		n, _ := strconv.Atoi(fe.Param())
		return tr.T(i18n.MsgMaxLength, n)
	case "username":
		return tr.T(i18n.MsgUsernameInvalid)
	case "eqfield":
		return tr.T(i18n.MsgPasswordMismatch)
	default:
		return tr.T(i18n.MsgInvalidForm)
	}
}

// passwordPolicy translates auth.ValidatePassword violations onto field.
func passwordPolicy(errs Errors, field, password, username string, tr *i18n.Translator) {
	for _, err := range auth.ValidatePassword(password, username) {
		switch {
		case errors.Is(err, auth.ErrPasswordLikeUser):
			errs.Add(field, tr.T(i18n.MsgPasswordLikeUser))
		case errors.Is(err, auth.ErrPasswordTooShort):
			errs.Add(field, tr.T(i18n.MsgPasswordShort, auth.MinPasswordLength))
		case errors.Is(err, auth.ErrPasswordCommon):
			errs.Add(field, tr.T(i18n.MsgPasswordCommon))
		case errors.Is(err, auth.ErrPasswordNumeric):
			errs.Add(field, tr.T(i18n.MsgPasswordNumeric))
		}
	}
}

// checkbox follows the HTML convention: present and not explicitly false.
func checkbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}
