// controllers/business.go
package controllers

import "redihair-backend/i18n"

// BusinessInfo is the studio contact block rendered on every page.
type BusinessInfo struct {
	Name      string
	City      string
	Address   string
	Phone     string
	Instagram string
	Hours     string
	OffDay    i18n.Text
}

var Business = BusinessInfo{
	Name:      "Redi Hair Studio",
	City:      "Peshkopi",
	Address:   `Rruga "Tercilio Kardinali", përball Hotel Veri`,
	Phone:     "+355 68 289 7018",
	Instagram: "redi_hair_studio",
	Hours:     "09:00–21:00",
	OffDay:    i18n.T("Monday", "E Hënë"),
}

// bizView localizes the bilingual fields for the templates.
func bizView(lang i18n.Lang) map[string]string {
	return map[string]string{
		"Name":      Business.Name,
		"City":      Business.City,
		"Address":   Business.Address,
		"Phone":     Business.Phone,
		"Instagram": Business.Instagram,
		"Hours":     Business.Hours,
		"OffDay":    Business.OffDay.In(lang),
	}
}
