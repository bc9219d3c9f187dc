// controllers/controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"redihair-backend/i18n"
	"redihair-backend/services"
	"redihair-backend/utils"
)

// Controller holds the page handlers' collaborators. Everything user-facing
// is rendered in the request language, resolved per request.
type Controller struct {
	store       services.Store
	booking     *services.BookingService
	contact     *services.ContactService
	flash       *utils.FlashStore
	defaultLang i18n.Lang
}

func New(store services.Store, booking *services.BookingService, contact *services.ContactService, flash *utils.FlashStore, defaultLang i18n.Lang) *Controller {
	return &Controller{
		store:       store,
		booking:     booking,
		contact:     contact,
		flash:       flash,
		defaultLang: defaultLang,
	}
}

func (ctl *Controller) lang(c *gin.Context) i18n.Lang {
	return i18n.FromRequest(c, ctl.defaultLang)
}

func (ctl *Controller) serverError(c *gin.Context, err error) {
	log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// pageStrings are the static labels each template needs, localized once in
// the handler so templates stay language-free.
func pageStrings(lang i18n.Lang) map[string]string {
	labels := map[string]i18n.Text{
		"NavHome":     i18n.T("Home", "Kreu"),
		"NavAbout":    i18n.T("About", "Rreth nesh"),
		"NavContact":  i18n.T("Contact", "Kontakt"),
		"Services":    i18n.T("Our services", "Shërbimet tona"),
		"BookTitle":   i18n.T("Book an appointment", "Rezervo një takim"),
		"Service":     i18n.T("Service", "Shërbimi"),
		"SelectOne":   i18n.T("Select a service", "Zgjidh një shërbim"),
		"Date":        i18n.T("Date", "Data"),
		"Time":        i18n.T("Time", "Ora"),
		"FullName":    i18n.T("Full name", "Emër & Mbiemër"),
		"Phone":       i18n.T("Phone number", "Numër telefoni"),
		"Email":       i18n.T("Email (optional)", "Email (opsionale)"),
		"Notes":       i18n.T("Notes (optional)", "Shënim (opsionale)"),
		"Submit":      i18n.T("Book now", "Rezervo tani"),
		"YourName":    i18n.T("Your name", "Emri juaj"),
		"YourEmail":   i18n.T("Your email", "Emaili juaj"),
		"YourMessage": i18n.T("Write your message...", "Shkruani mesazhin tuaj..."),
		"Send":        i18n.T("Send message", "Dërgo mesazhin"),
		"Hours":       i18n.T("Opening hours", "Orari"),
		"ClosedOn":    i18n.T("Closed on", "Mbyllur"),
		"Price":       i18n.T("Price", "Çmimi"),
	}
	out := make(map[string]string, len(labels))
	for k, t := range labels {
		out[k] = t.In(lang)
	}
	return out
}
