package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	appointmentRepo "docbook/database/repository/appointment"
	doctorRepo "docbook/database/repository/doctor"
	userRepoPkg "docbook/database/repository/user"
	"docbook/database/seed"
	"docbook/handlers"
	"docbook/models"
	"docbook/services/appointment"
	"docbook/services/auth"
	"docbook/services/booking"
	"docbook/services/directory"
	"docbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var clock = time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	ctx := context.Background()

	users := userRepoPkg.NewMemoryUserRepo()
	demo := models.User{ID: seed.DemoUserID, Name: "Jane Doe", Email: seed.DemoUserEmail, Phone: "555-0100"}
	if err := auth.SeedUser(ctx, users, demo, seed.DemoUserPassword); err != nil {
		t.Fatalf("SeedUser: %v", err)
	}

	directoryService := &directory.DefaultDirectoryService{
		Repo:          doctorRepo.NewMemoryDoctorRepo(seed.Doctors()),
		SpecialtyList: seed.Specialties,
		SlotGrid:      seed.TimeSlots(),
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:   appointmentRepo.NewMemoryAppointmentRepo(seed.Appointments()),
		Logger: logger,
	}
	authService := &auth.DefaultAuthService{
		Repo:     users,
		Revoked:  auth.NewMemoryRevocationStore(),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingSessionService{
		Directory:    directoryService,
		Store:        booking.NewMemorySessionStore(10 * time.Minute),
		OnComplete:   []booking.CompletionHook{appointmentService.Record},
		WindowMonths: 3,
		Location:     time.UTC,
		Logger:       logger,
		Now:          func() time.Time { return clock },
	}

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.Use(utils.RequestLogger(logger))
	RegisterRoutes(r, handlers.NewHandlerBundle(
		authService,
		handlers.NewAuthHandler(authService, appointmentService),
		handlers.NewDirectoryHandler(directoryService, time.UTC),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewBookingHandler(bookingService),
		handlers.HealthHandler,
	))
	return r
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email:    seed.DemoUserEmail,
		Password: seed.DemoUserPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp models.AuthResponse
	decode(t, w, &resp)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health: %d", w.Code)
	}
}

func TestDoctorEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/doctors?specialty=Cardiology", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}
	var list struct {
		Count   int             `json:"count"`
		Doctors []models.Doctor `json:"doctors"`
	}
	decode(t, w, &list)
	if list.Count != 1 || list.Doctors[0].ID != "2" {
		t.Errorf("list = %+v", list)
	}

	if w := do(t, r, http.MethodGet, "/api/doctors/9", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown doctor: %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/doctors/1/slots?date=2024-01-25", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("slots: %d", w.Code)
	}
	var day models.DaySlots
	decode(t, w, &day)
	if day.Date != "2024-01-25" || len(day.Slots) != 12 {
		t.Errorf("slots = %+v", day)
	}

	if w := do(t, r, http.MethodGet, "/api/doctors/1/slots?date=25-01-2024", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad date: %d", w.Code)
	}
}

func TestBookingRequiresAuth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/booking/sessions", "", models.StartBookingInput{DoctorID: "1"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestBookingFlowEndToEnd(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/api/booking/sessions", token, models.StartBookingInput{DoctorID: "1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("start: %d %s", w.Code, w.Body.String())
	}
	var view models.BookingSessionView
	decode(t, w, &view)
	base := "/api/booking/sessions/" + view.SessionID

	// Advancing without a date or time names both fields.
	w = do(t, r, http.MethodPost, base+"/next", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blocked next: %d", w.Code)
	}
	var errResp utils.ErrorResponse
	decode(t, w, &errResp)
	if !reflect.DeepEqual(errResp.Fields, []string{"date", "time"}) {
		t.Errorf("fields = %v", errResp.Fields)
	}

	if w = do(t, r, http.MethodPut, base+"/date", token, models.SelectDateInput{Date: "2024-06-01"}); w.Code != http.StatusBadRequest {
		t.Errorf("out of range date: %d", w.Code)
	}
	if w = do(t, r, http.MethodPut, base+"/date", token, models.SelectDateInput{Date: "2024-01-25"}); w.Code != http.StatusOK {
		t.Fatalf("date: %d %s", w.Code, w.Body.String())
	}
	if w = do(t, r, http.MethodPut, base+"/time", token, models.SelectTimeInput{Time: "10:30 AM"}); w.Code != http.StatusOK {
		t.Fatalf("time: %d", w.Code)
	}
	if w = do(t, r, http.MethodPost, base+"/next", token, nil); w.Code != http.StatusOK {
		t.Fatalf("next to patient info: %d", w.Code)
	}
	if w = do(t, r, http.MethodPut, base+"/patient", token, models.PatientInfoInput{Name: "Jane Doe", Phone: "555-0100"}); w.Code != http.StatusOK {
		t.Fatalf("patient: %d", w.Code)
	}

	// Submitting from step 2 is a conflict.
	if w = do(t, r, http.MethodPost, base+"/submit", token, nil); w.Code != http.StatusConflict {
		t.Errorf("early submit: %d", w.Code)
	}

	w = do(t, r, http.MethodPost, base+"/next", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("next to confirmation: %d", w.Code)
	}
	decode(t, w, &view)
	if view.Step != 3 || view.Summary == nil || view.Summary.FormattedDate != "Thursday, January 25, 2024" {
		t.Errorf("confirmation view = %+v", view)
	}

	w = do(t, r, http.MethodPost, base+"/submit", token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	var confirmed struct {
		Message     string             `json:"message"`
		Appointment models.Appointment `json:"appointment"`
	}
	decode(t, w, &confirmed)
	if confirmed.Message != "Booking Confirmed!" || confirmed.Appointment.Status != models.AppointmentStatusUpcoming {
		t.Errorf("submit response = %+v", confirmed)
	}

	if w = do(t, r, http.MethodGet, base, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("session after submit: %d", w.Code)
	}
	if w = do(t, r, http.MethodPost, base+"/submit", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("second submit: %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/appointments/"+confirmed.Appointment.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("booked appointment not listed: %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/users/me", token, nil)
	var me models.User
	decode(t, w, &me)
	if me.TotalAppointments != 4 || me.UpcomingAppointments != 3 {
		t.Errorf("profile counters = %+v", me)
	}
}

func TestBookingBackAndCancel(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/api/booking/sessions", token, models.StartBookingInput{DoctorID: "3"})
	var view models.BookingSessionView
	decode(t, w, &view)
	base := "/api/booking/sessions/" + view.SessionID

	w = do(t, r, http.MethodPost, base+"/back", token, nil)
	decode(t, w, &view)
	if w.Code != http.StatusOK || view.Step != 1 {
		t.Errorf("back at step 1: %d step %d", w.Code, view.Step)
	}

	if w = do(t, r, http.MethodDelete, base, token, nil); w.Code != http.StatusNoContent {
		t.Errorf("cancel: %d", w.Code)
	}
	if w = do(t, r, http.MethodGet, base, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("cancelled session still served: %d", w.Code)
	}
}

func TestAppointmentEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/appointments?status=upcoming", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}

	if w = do(t, r, http.MethodPost, "/api/appointments/1/cancel", token, nil); w.Code != http.StatusOK {
		t.Errorf("cancel upcoming: %d", w.Code)
	}
	if w = do(t, r, http.MethodPost, "/api/appointments/3/cancel", token, nil); w.Code != http.StatusConflict {
		t.Errorf("cancel completed: %d", w.Code)
	}
	if w = do(t, r, http.MethodGet, "/api/appointments?status=lost", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("invalid status filter: %d", w.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	if w := do(t, r, http.MethodPost, "/api/auth/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/users/me", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token accepted: %d", w.Code)
	}
}
