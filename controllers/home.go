// controllers/home.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"redihair-backend/i18n"
	"redihair-backend/services"
	"redihair-backend/utils"
)

// Home renders the landing page with the service list and booking form.
func (ctl *Controller) Home(c *gin.Context) {
	lang := ctl.lang(c)
	ctl.renderHome(c, lang, services.BookingInput{}, nil, ctl.flash.Pop(c))
}

// Book handles the booking form POST. On success it redirects back to the
// booking anchor with a flash; on rejection it re-renders the page with the
// field and form messages and the submitted values.
func (ctl *Controller) Book(c *gin.Context) {
	lang := ctl.lang(c)
	in := services.BookingInput{
		ServiceID: c.PostForm("service"),
		Date:      c.PostForm("date"),
		Time:      c.PostForm("time"),
		FullName:  c.PostForm("full_name"),
		Phone:     c.PostForm("phone"),
		Email:     c.PostForm("email"),
		Notes:     c.PostForm("notes"),
	}

	_, err := ctl.booking.Book(c.Request.Context(), in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			banner := &utils.Flash{
				Level: "error",
				Message: i18n.T(
					"Please fix the booking form errors.",
					"Ju lutem korrigjoni gabimet në formularin e rezervimit.").In(lang),
			}
			ctl.renderHome(c, lang, in, verr, banner)
			return
		}
		ctl.serverError(c, err)
		return
	}

	ctl.flash.Set(c, "success", i18n.T(
		"Your booking request was sent successfully.",
		"Rezervimi u dërgua me sukses. Ne do ta konfirmojmë së shpejti.").In(lang))
	c.Redirect(http.StatusSeeOther, "/#booking")
}

func (ctl *Controller) renderHome(c *gin.Context, lang i18n.Lang, form services.BookingInput, verr *services.ValidationError, banner *utils.Flash) {
	svcs, err := ctl.store.ListServices(c.Request.Context())
	if err != nil {
		ctl.serverError(c, err)
		return
	}

	type serviceView struct {
		ID    uint
		Name  string
		Price float64
	}
	views := make([]serviceView, len(svcs))
	for i, s := range svcs {
		views[i] = serviceView{ID: s.ID, Name: s.DisplayName(lang), Price: s.Price}
	}

	fieldErrors := map[string][]string{}
	var formErrors []string
	if verr != nil {
		fieldErrors = verr.FieldMessages(lang)
		formErrors = verr.FormMessages(lang)
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Lang":        string(lang),
		"T":           pageStrings(lang),
		"Biz":         bizView(lang),
		"Services":    views,
		"Slots":       ctl.booking.SlotChoices(),
		"Form":        form,
		"Flash":       banner,
		"FieldErrors": fieldErrors,
		"FormErrors":  formErrors,
	})
}
