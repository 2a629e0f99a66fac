package handler

import (
	"net/http"

	"tareas/internal/forms"
	"tareas/internal/i18n"
	"tareas/internal/logger"
	"tareas/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render executes a page template with the values every page needs.
func render(c *gin.Context, status int, name string, data gin.H) {
	tr := i18n.From(c)
	data["T"] = tr.T
	data["Lang"] = tr.Lang()
	data["Path"] = c.Request.URL.RequestURI()
	if principal, ok := middleware.CurrentUser(c); ok {
		data["User"] = &principal
	} else {
		data["User"] = nil
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = forms.Errors{}
	}
	c.HTML(status, name, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "error.html", gin.H{"Heading": "Page not found"})
}

func serverError(c *gin.Context, msg string, err error) {
	logger.ErrorContext(c.Request.Context(), msg, "error", err)
	render(c, http.StatusInternalServerError, "error.html", gin.H{"Heading": "Something went wrong"})
}

// invalidForm is the form level error shown when the body cannot be bound.
func invalidForm(c *gin.Context) forms.Errors {
	errs := forms.Errors{}
	errs.Add(forms.NonFieldErrors, i18n.From(c).T(i18n.MsgInvalidForm))
	return errs
}

// NotFound renders the not found page for unmatched routes.
func NotFound(c *gin.Context) {
	notFound(c)
}
