// controllers/language.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"redihair-backend/i18n"
)

// SetLanguage stores the visitor's language choice in a cookie and sends
// them back where they came from.
func (ctl *Controller) SetLanguage(c *gin.Context) {
	lang := i18n.Parse(c.PostForm("language"))
	c.SetCookie(i18n.LangCookie, string(lang), 365*24*3600, "/", "", false, false)

	next := c.PostForm("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusSeeOther, next)
}
