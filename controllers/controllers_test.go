package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redihair-backend/i18n"
	"redihair-backend/models"
	"redihair-backend/services"
	"redihair-backend/utils"
)

type stubStore struct {
	mu       sync.Mutex
	services []models.Service
	slots    map[string]bool
	messages []models.ContactMessage
}

func newStubStore() *stubStore {
	return &stubStore{
		services: []models.Service{
			{ID: 1, NameEn: "Haircut", NameSq: "Qethje", Price: 10},
			{ID: 2, NameEn: "Beard trim", NameSq: "Rregullim mjekre", Price: 5},
		},
		slots: map[string]bool{},
	}
}

func (s *stubStore) ServiceByID(_ context.Context, id uint) (*models.Service, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			return &svc, nil
		}
	}
	return nil, services.ErrServiceNotFound
}

func (s *stubStore) ListServices(_ context.Context) ([]models.Service, error) {
	return s.services, nil
}

func (s *stubStore) SlotExists(_ context.Context, date time.Time, clock string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[date.Format(services.DateLayout)+" "+clock], nil
}

func (s *stubStore) CreateAppointment(_ context.Context, appt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := appt.Date.Format(services.DateLayout) + " " + appt.Time
	if s.slots[key] {
		return services.ErrSlotTaken
	}
	s.slots[key] = true
	appt.ID = 1
	return nil
}

func (s *stubStore) CreateContactMessage(_ context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = uint(len(s.messages) + 1)
	s.messages = append(s.messages, *msg)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newStubStore()
	booking, err := services.NewBookingService(store, services.Schedule{
		Open:      "09:00",
		Close:     "21:00",
		ClosedDay: time.Monday,
		Location:  time.UTC,
	})
	require.NoError(t, err)
	contact := services.NewContactService(store)
	flash := utils.NewFlashStore([]byte("test-hash-key"))
	ctl := New(store, booking, contact, flash, i18n.English)

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.GET("/", ctl.Home)
	r.POST("/book", ctl.Book)
	r.GET("/about", ctl.About)
	r.GET("/contact", ctl.ContactPage)
	r.POST("/contact", ctl.SubmitContact)
	r.POST("/i18n/setlang", ctl.SetLanguage)
	return r, store
}

// nextOpenDate returns a future date that is not the closure day.
func nextOpenDate() string {
	d := time.Now().UTC().AddDate(0, 0, 1)
	for d.Weekday() == time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(services.DateLayout)
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingForm() url.Values {
	return url.Values{
		"service":   {"1"},
		"date":      {nextOpenDate()},
		"time":      {"10:00"},
		"full_name": {"Ana Berisha"},
		"phone":     {"+355691234567"},
	}
}

func TestHomePage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Haircut")
	assert.Contains(t, w.Body.String(), "Book an appointment")
}

func TestHomePageAlbanian(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=sq", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Qethje")
	assert.Contains(t, w.Body.String(), "Rezervo")
}

func TestBookSuccessRedirects(t *testing.T) {
	r, store := newTestRouter(t)

	w := postForm(r, "/book", bookingForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/#booking", w.Header().Get("Location"))
	assert.NotEmpty(t, store.slots)

	var hasFlash bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "flash" && ck.Value != "" {
			hasFlash = true
		}
	}
	assert.True(t, hasFlash, "success flash queued for the redirect")
}

func TestBookValidationRerenders(t *testing.T) {
	r, store := newTestRouter(t)

	form := bookingForm()
	form.Set("full_name", "")
	w := postForm(r, "/book", form)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please fix the booking form errors.")
	assert.Contains(t, w.Body.String(), "Please enter your full name.")
	assert.Empty(t, store.slots, "nothing persisted on rejection")
}

func TestBookTakenSlot(t *testing.T) {
	r, _ := newTestRouter(t)

	first := postForm(r, "/book", bookingForm())
	require.Equal(t, http.StatusSeeOther, first.Code)

	form := bookingForm()
	form.Set("full_name", "Besa Hoxha")
	form.Set("phone", "+355692222222")
	second := postForm(r, "/book", form)

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "That time is already booked.")
}

func TestBookAlbanianMessages(t *testing.T) {
	r, _ := newTestRouter(t)

	form := bookingForm()
	form.Set("date", "2020-01-07") // long past
	w := postForm(r, "/book?lang=sq", form)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nuk mund të rezervoni një orar në të kaluarën.")
}

func TestContactFlow(t *testing.T) {
	r, store := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	ok := postForm(r, "/contact", url.Values{
		"name":    {"Ana Berisha"},
		"email":   {"ana@example.com"},
		"message": {"I would like to ask about prices."},
	})
	assert.Equal(t, http.StatusSeeOther, ok.Code)
	assert.Equal(t, "/contact", ok.Header().Get("Location"))
	assert.Len(t, store.messages, 1)

	bad := postForm(r, "/contact", url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"message": {"too short"},
	})
	assert.Equal(t, http.StatusOK, bad.Code)
	assert.Contains(t, bad.Body.String(), "Message must be at least 10 characters.")
	assert.Len(t, store.messages, 1, "rejected message not persisted")
}

func TestAboutPage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Redi Hair Studio")
	assert.Contains(t, w.Body.String(), "Peshkopi")
}

func TestSetLanguage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/i18n/setlang", url.Values{
		"language": {"sq"},
		"next":     {"/about"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/about", w.Header().Get("Location"))

	var lang string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == i18n.LangCookie {
			lang = ck.Value
		}
	}
	assert.Equal(t, "sq", lang)

	// Off-site redirect targets are not followed.
	w = postForm(r, "/i18n/setlang", url.Values{
		"language": {"en"},
		"next":     {"https://evil.example"},
	})
	assert.Equal(t, "/", w.Header().Get("Location"))
}
