package i18n

import "time"

// weekdayNames uses the Albanian accusative forms ("Të hënën jemi mbyllur"),
// which is how the day reads inside the closed-day sentence.
var weekdayNames = map[time.Weekday]Text{
	time.Sunday:    {En: "Sunday", Sq: "Të dielën"},
	time.Monday:    {En: "Monday", Sq: "Të hënën"},
	time.Tuesday:   {En: "Tuesday", Sq: "Të martën"},
	time.Wednesday: {En: "Wednesday", Sq: "Të mërkurën"},
	time.Thursday:  {En: "Thursday", Sq: "Të enjten"},
	time.Friday:    {En: "Friday", Sq: "Të premten"},
	time.Saturday:  {En: "Saturday", Sq: "Të shtunën"},
}

func WeekdayName(d time.Weekday) Text {
	return weekdayNames[d]
}
