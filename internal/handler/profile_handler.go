package handler

import (
	"errors"
	"net/http"

	"tareas/internal/auth"
	"tareas/internal/forms"
	"tareas/internal/i18n"
	"tareas/internal/logger"
	"tareas/internal/middleware"
	"tareas/internal/model"
	"tareas/internal/repository"

	"github.com/gin-gonic/gin"
)

// ProfileHandler edits the account of the session user. The :id path segment
// is only there for old links and never selects another account.
type ProfileHandler struct {
	userRepo      repository.UserRepositoryInterface
	tokens        *auth.TokenManager
	secureCookies bool
}

func NewProfileHandler(userRepo repository.UserRepositoryInterface, tokens *auth.TokenManager, secureCookies bool) *ProfileHandler {
	return &ProfileHandler{
		userRepo:      userRepo,
		tokens:        tokens,
		secureCookies: secureCookies,
	}
}

func (h *ProfileHandler) Edit(c *gin.Context) {
	if _, ok := h.sessionUser(c); !ok {
		return
	}
	render(c, http.StatusOK, "profile.html", gin.H{"Errors": forms.Errors{}})
}

// Update changes the password after re-verifying the current one
//
// @Summary      Edit profile
// @Tags         Users
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id                path      string  true   "ignored, the session user is edited"
// @Param        password          formData  string  true   "current password"
// @Param        new_password      formData  string  false  "new password"
// @Param        confirm_password  formData  string  false  "new password again"
// @Success      302
// @Router       /editar-perfil/{id}/ [post]
func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var form forms.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "profile.html", gin.H{"Errors": invalidForm(c)})
		return
	}

	changed, errs := form.Check(user.HashedPassword, user.Username, i18n.From(c))
	if errs.Any() {
		render(c, http.StatusOK, "profile.html", gin.H{"Errors": errs})
		return
	}
	if !changed {
		c.Redirect(http.StatusFound, "/")
		return
	}

	hash, err := auth.HashPassword(form.NewPassword)
	if err != nil {
		serverError(c, "Failed to hash password", err)
		return
	}
	if err := h.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.endSession(c)
			return
		}
		serverError(c, "Failed to update password", err)
		return
	}

	principal := auth.Principal{UserID: user.ID, Username: user.Username}
	if err := middleware.Login(c, h.tokens, principal, h.secureCookies); err != nil {
		serverError(c, "Failed to renew session", err)
		return
	}

	logger.InfoContext(ctx, "Password changed", "user_id", user.ID.String())
	c.Redirect(http.StatusFound, "/")
}

// sessionUser loads the stored account behind the session. A session whose
// account is gone is closed and sent back to the login page.
func (h *ProfileHandler) sessionUser(c *gin.Context) (*model.User, bool) {
	principal, _ := middleware.CurrentUser(c)
	user, err := h.userRepo.GetByID(c.Request.Context(), principal.UserID)
	if err != nil {
		serverError(c, "Failed to retrieve user", err)
		return nil, false
	}
	if user == nil {
		h.endSession(c)
		return nil, false
	}
	return user, true
}

func (h *ProfileHandler) endSession(c *gin.Context) {
	middleware.ClearSession(c, h.secureCookies)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
