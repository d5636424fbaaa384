package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/store"
)

func setupTest(t *testing.T) *Handlers {
	t.Helper()

	st := store.New([]docket.Case{
		{
			ID:          "case-a",
			Number:      "CV-1001",
			Title:       "Alder v. Birch",
			Description: "Contract dispute over **delivery terms**.",
			Tags:        []string{"civil"},
			Hearings: []docket.Hearing{
				{ID: "h1", Title: "Initial conference", Date: docket.NewDate(2026, time.March, 2), StartTime: "09:00", Status: docket.StatusNew},
			},
		},
		{
			ID:     "case-b",
			Number: "CR-2002",
			Title:  "State v. Crane",
			Hearings: []docket.Hearing{
				{ID: "h3", Title: "Arraignment", Date: docket.NewDate(2026, time.March, 2), StartTime: "08:30", Status: docket.StatusNew},
				{ID: "h4", Title: "Bail review", Date: docket.NewDate(2026, time.March, 6), StartTime: "10:00", Status: docket.StatusCancelled},
			},
		},
	})

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}
	renderer := NewRenderer(templateSub, "test")

	return &Handlers{
		store:    st,
		cfg:      config.DefaultConfig(),
		renderer: renderer,
	}
}

// --- HandleWeek ---

func TestHandleWeek_WithDate(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/week?date=2026-03-04", nil)
	rec := httptest.NewRecorder()
	h.HandleWeek(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Week of 2026-03-02") {
		t.Error("expected the Monday anchor in the page title")
	}
	if !strings.Contains(body, "Arraignment") {
		t.Error("expected Monday's arraignment in the weekly board")
	}
	if !strings.Contains(body, "Bail review") {
		t.Error("cancelled hearings should stay on the board")
	}
}

func TestHandleWeek_Default(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/week", nil)
	rec := httptest.NewRecorder()
	h.HandleWeek(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHandleWeek_BadDate(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/week?date=03/04/2026", nil)
	rec := httptest.NewRecorder()
	h.HandleWeek(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// --- HandleCases ---

func TestHandleCases_Default(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases", nil)
	rec := httptest.NewRecorder()
	h.HandleCases(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "CV-1001") || !strings.Contains(body, "CR-2002") {
		t.Error("expected both case numbers in the list view")
	}
	if !strings.Contains(body, "civil") {
		t.Error("expected the civil tag in the list view")
	}
}

func TestHandleCases_StatusFilter(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases?status=cancelled", nil)
	rec := httptest.NewRecorder()
	h.HandleCases(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Bail review") {
		t.Error("expected the cancelled hearing in filtered results")
	}
	if strings.Contains(body, "Arraignment") {
		t.Error("did not expect non-cancelled hearings in filtered results")
	}
	if strings.Contains(body, "CV-1001") {
		t.Error("cases with no retained hearings should be omitted")
	}
}

func TestHandleCases_Search(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases?q=crane", nil)
	rec := httptest.NewRecorder()
	h.HandleCases(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "CR-2002") {
		t.Error("expected the matching case in search results")
	}
	if strings.Contains(body, "Initial conference") {
		t.Error("did not expect hearings of non-matching cases")
	}
}

func TestHandleCases_InvalidSort(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases?sort=priority", nil)
	rec := httptest.NewRecorder()
	h.HandleCases(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// --- HandleCaseDetail ---

func TestHandleCaseDetail(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases/case-a", nil)
	req.SetPathValue("id", "case-a")
	rec := httptest.NewRecorder()
	h.HandleCaseDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Alder v. Birch") {
		t.Error("expected the case title on the detail page")
	}
	// The markdown description renders to HTML.
	if !strings.Contains(body, "<strong>delivery terms</strong>") {
		t.Error("expected the description rendered as markdown")
	}
	if !strings.Contains(body, "Initial conference") {
		t.Error("expected the case's hearings on the detail page")
	}
}

func TestHandleCaseDetail_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	h.HandleCaseDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleCaseDetail_NotFoundJSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/cases/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleCaseDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	if payload.Error.Code != "NOT_FOUND" {
		t.Errorf("error code = %q, want NOT_FOUND", payload.Error.Code)
	}
}

// --- Tag handlers ---

func postForm(target, body string) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleAddTag(t *testing.T) {
	h := setupTest(t)

	req := postForm("/cases/case-b/tags", "tag=appeal")
	req.SetPathValue("id", "case-b")
	rec := httptest.NewRecorder()
	h.HandleAddTag(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/cases/case-b" {
		t.Errorf("Location = %q, want /cases/case-b", loc)
	}

	c, _ := h.store.FindCase("case-b")
	if len(c.Tags) != 1 || c.Tags[0] != "appeal" {
		t.Errorf("Tags = %v, want [appeal]", c.Tags)
	}
}

func TestHandleAddTag_UnknownCase(t *testing.T) {
	h := setupTest(t)

	req := postForm("/cases/nonexistent/tags", "tag=appeal")
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	h.HandleAddTag(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleRemoveTag(t *testing.T) {
	h := setupTest(t)

	req := postForm("/cases/case-a/tags/remove", "tag=civil")
	req.SetPathValue("id", "case-a")
	rec := httptest.NewRecorder()
	h.HandleRemoveTag(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	c, _ := h.store.FindCase("case-a")
	if len(c.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", c.Tags)
	}
}

// --- HandleRemoveHearing ---

func TestHandleRemoveHearing(t *testing.T) {
	h := setupTest(t)

	req := postForm("/hearings/h1/delete", "back=/cases/case-a")
	req.SetPathValue("id", "h1")
	rec := httptest.NewRecorder()
	h.HandleRemoveHearing(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/cases/case-a" {
		t.Errorf("Location = %q, want the back target", loc)
	}

	for _, e := range h.store.Events() {
		if e.ID == "h1" {
			t.Error("hearing should be gone from the projection")
		}
	}
}

func TestHandleRemoveHearing_RejectsExternalRedirect(t *testing.T) {
	h := setupTest(t)

	req := postForm("/hearings/h3/delete", "back=https://example.com/phish")
	req.SetPathValue("id", "h3")
	rec := httptest.NewRecorder()
	h.HandleRemoveHearing(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/cases" {
		t.Errorf("Location = %q, non-local back targets should fall back to /cases", loc)
	}
}

func TestHandleRemoveHearing_NotFound(t *testing.T) {
	h := setupTest(t)

	req := postForm("/hearings/nonexistent/delete", "")
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	h.HandleRemoveHearing(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
