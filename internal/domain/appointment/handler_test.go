package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	repo := NewMemRepo()
	fixtures := []Appointment{
		{PatientID: "PT10834", DoctorID: "DR1001", Date: "2024-01-10", Time: "10:30", Status: StatusConfirmed},
		{PatientID: "PT10567", DoctorID: "DR1002", Date: "2024-01-10", Time: "11:15", Status: StatusWaiting},
		{PatientID: "PT10834", DoctorID: "DR1002", Date: "2024-01-11", Time: "09:00", Status: StatusScheduled},
	}
	for i := range fixtures {
		if err := repo.Create(context.Background(), &fixtures[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
	return NewHandler(NewService(repo)), echo.New()
}

func TestHandler_List_DateFilter(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/?date=2024-01-10", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []Appointment `json:"data"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
	for _, a := range resp.Data {
		if a.Date != "2024-01-10" {
			t.Errorf("stray date %s", a.Date)
		}
	}
}

func TestHandler_List_PatientFilter(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/?patientId=PT10834", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data []Appointment `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(resp.Data))
	}
	for _, a := range resp.Data {
		if a.PatientID != "PT10834" {
			t.Errorf("stray patientId %s", a.PatientID)
		}
	}
}

func TestHandler_Create_MissingDoctor(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"patientId":"PT10834","date":"2024-01-12","time":"15:00"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("AP9999")

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
