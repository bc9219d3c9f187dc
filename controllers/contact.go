// controllers/contact.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"redihair-backend/i18n"
	"redihair-backend/services"
	"redihair-backend/utils"
)

// ContactPage renders the contact form.
func (ctl *Controller) ContactPage(c *gin.Context) {
	lang := ctl.lang(c)
	ctl.renderContact(c, lang, services.ContactInput{}, nil, ctl.flash.Pop(c))
}

// SubmitContact validates and stores an inquiry, then redirects back to the
// contact page on success.
func (ctl *Controller) SubmitContact(c *gin.Context) {
	lang := ctl.lang(c)
	in := services.ContactInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	_, err := ctl.contact.Submit(c.Request.Context(), in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			banner := &utils.Flash{
				Level: "error",
				Message: i18n.T(
					"Please fix the errors below.",
					"Ju lutem korrigjoni gabimet më poshtë.").In(lang),
			}
			ctl.renderContact(c, lang, in, verr, banner)
			return
		}
		ctl.serverError(c, err)
		return
	}

	ctl.flash.Set(c, "success", i18n.T(
		"Thanks! Your message has been sent.",
		"Faleminderit! Mesazhi u dërgua me sukses.").In(lang))
	c.Redirect(http.StatusSeeOther, "/contact")
}

func (ctl *Controller) renderContact(c *gin.Context, lang i18n.Lang, form services.ContactInput, verr *services.ValidationError, banner *utils.Flash) {
	fieldErrors := map[string][]string{}
	if verr != nil {
		fieldErrors = verr.FieldMessages(lang)
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Lang":        string(lang),
		"T":           pageStrings(lang),
		"Biz":         bizView(lang),
		"Form":        form,
		"Flash":       banner,
		"FieldErrors": fieldErrors,
	})
}
