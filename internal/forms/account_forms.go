package forms

import (
	"strings"

	"tareas/internal/auth"
	"tareas/internal/i18n"
)

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next" validate:"-"`
}

func (f *LoginForm) Validate(tr *i18n.Translator) Errors {
	f.Username = trim(f.Username)
	return check(f, tr)
}

type RegistrationForm struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password1 string `form:"password1" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// Validate checks the field rules and, once both passwords agree, the
// password policy. Username uniqueness needs the store and is left to the caller.
func (f *RegistrationForm) Validate(tr *i18n.Translator) Errors {
	f.Username = trim(f.Username)
	errs := check(f, tr)
	if errs.Any() {
		return errs
	}
	passwordPolicy(errs, "password2", f.Password2, f.Username, tr)
	return errs
}

// ProfileForm edits the session user's password. The username is display only.
type ProfileForm struct {
	Password        string `form:"password" validate:"required"`
	NewPassword     string `form:"new_password" validate:"-"`
	ConfirmPassword string `form:"confirm_password" validate:"-"`
}

func (f *ProfileForm) Validate(tr *i18n.Translator) Errors {
	return check(f, tr)
}

// Check runs the profile state machine against the stored hash: the current
// password is verified first, then the new pair is compared, then the policy.
// It reports whether a new password must be stored. Nothing is mutated.
func (f *ProfileForm) Check(hashed, username string, tr *i18n.Translator) (bool, Errors) {
	errs := f.Validate(tr)
	if errs.Any() {
		return false, errs
	}

	if !auth.CheckPassword(hashed, f.Password) {
		errs.Add("password", tr.T(i18n.MsgCurrentPassword))
		return false, errs
	}

	if f.NewPassword != f.ConfirmPassword {
		errs.Add("confirm_password", tr.T(i18n.MsgNewPasswordMatch))
		return false, errs
	}

	if f.NewPassword == "" {
		return false, errs
	}

	passwordPolicy(errs, "new_password", f.NewPassword, username, tr)
	if errs.Any() {
		return false, errs
	}
	return true, errs
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
