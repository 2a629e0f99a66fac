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
	"tareas/internal/throttle"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userRepo      repository.UserRepositoryInterface
	tokens        *auth.TokenManager
	limiter       throttle.Limiter
	secureCookies bool
}

func NewAuthHandler(userRepo repository.UserRepositoryInterface, tokens *auth.TokenManager, limiter throttle.Limiter, secureCookies bool) *AuthHandler {
	if limiter == nil {
		limiter = throttle.Nop{}
	}
	return &AuthHandler{
		userRepo:      userRepo,
		tokens:        tokens,
		limiter:       limiter,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	renderLogin(c, http.StatusOK, &forms.LoginForm{Next: c.Query("next")}, nil)
}

// Login authenticates the credentials and opens a session
//
// @Summary      Log in
// @Tags         Users
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true   "username"
// @Param        password  formData  string  true   "password"
// @Param        next      formData  string  false  "local path to continue to"
// @Success      302
// @Failure      429
// @Router       /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ctx := c.Request.Context()
	tr := i18n.From(c)

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		renderLogin(c, http.StatusOK, &form, invalidForm(c))
		return
	}
	if errs := form.Validate(tr); errs.Any() {
		renderLogin(c, http.StatusOK, &form, errs)
		return
	}

	key := throttle.LoginKey(form.Username, c.ClientIP())
	allowed, err := h.limiter.Attempt(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "Login throttle unavailable", "error", err)
		allowed = true
	}
	if !allowed {
		logger.WarnContext(ctx, "Login throttled", "username", form.Username)
		errs := forms.Errors{}
		errs.Add(forms.NonFieldErrors, tr.T(i18n.MsgThrottled))
		renderLogin(c, http.StatusTooManyRequests, &form, errs)
		return
	}

	user, err := h.userRepo.FindByUsername(ctx, form.Username)
	if err != nil {
		serverError(c, "Failed to look up user", err)
		return
	}
	if user == nil || !auth.CheckPassword(user.HashedPassword, form.Password) {
		logger.InfoContext(ctx, "Login failed", "username", form.Username)
		errs := forms.Errors{}
		errs.Add(forms.NonFieldErrors, tr.T(i18n.MsgInvalidLogin))
		renderLogin(c, http.StatusOK, &form, errs)
		return
	}

	if err := h.limiter.Reset(ctx, key); err != nil {
		logger.WarnContext(ctx, "Failed to reset login throttle", "error", err)
	}
	if err := h.startSession(c, user); err != nil {
		serverError(c, "Failed to start session", err)
		return
	}
	c.Redirect(http.StatusFound, i18n.SafeRedirect(form.Next, "/"))
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	renderRegister(c, http.StatusOK, &forms.RegistrationForm{}, nil)
}

// Register creates an account and logs it in
//
// @Summary      Register
// @Tags         Users
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username   formData  string  true  "username"
// @Param        password1  formData  string  true  "password"
// @Param        password2  formData  string  true  "password confirmation"
// @Success      302
// @Router       /registro/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()
	tr := i18n.From(c)

	var form forms.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		renderRegister(c, http.StatusOK, &form, invalidForm(c))
		return
	}
	errs := form.Validate(tr)
	if errs.Any() {
		renderRegister(c, http.StatusOK, &form, errs)
		return
	}

	existing, err := h.userRepo.FindByUsername(ctx, form.Username)
	if err != nil {
		serverError(c, "Failed to look up user", err)
		return
	}
	if existing != nil {
		errs.Add("username", tr.T(i18n.MsgUsernameTaken))
		renderRegister(c, http.StatusOK, &form, errs)
		return
	}

	hash, err := auth.HashPassword(form.Password1)
	if err != nil {
		serverError(c, "Failed to hash password", err)
		return
	}

	user := &model.User{
		Username:       form.Username,
		HashedPassword: hash,
	}
	if err := h.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			errs.Add("username", tr.T(i18n.MsgUsernameTaken))
			renderRegister(c, http.StatusOK, &form, errs)
			return
		}
		serverError(c, "Failed to create user", err)
		return
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID.String())
	if err := h.startSession(c, user); err != nil {
		serverError(c, "Failed to start session", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout ends the session
//
// @Summary      Log out
// @Tags         Users
// @Success      302
// @Router       /logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c, h.secureCookies)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *AuthHandler) startSession(c *gin.Context, user *model.User) error {
	return middleware.Login(c, h.tokens, auth.Principal{UserID: user.ID, Username: user.Username}, h.secureCookies)
}

func renderLogin(c *gin.Context, status int, form *forms.LoginForm, errs forms.Errors) {
	if errs == nil {
		errs = forms.Errors{}
	}
	render(c, status, "login.html", gin.H{"Form": form, "Errors": errs})
}

func renderRegister(c *gin.Context, status int, form *forms.RegistrationForm, errs forms.Errors) {
	if errs == nil {
		errs = forms.Errors{}
	}
	render(c, status, "register.html", gin.H{"Form": form, "Errors": errs})
}
