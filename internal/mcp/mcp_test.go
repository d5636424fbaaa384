package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/ops"
	"github.com/docketlab/docket/internal/store"
)

// testSetup creates a seeded store and handlers for testing.
func testSetup(t *testing.T) (*store.Store, *Handlers) {
	t.Helper()

	st := store.New([]docket.Case{
		{
			ID:          "case-a",
			Number:      "CV-1001",
			Title:       "Alder v. Birch",
			Description: "Contract dispute.",
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
				{ID: "h4", Title: "Bail review", Date: docket.NewDate(2026, time.March, 6), StartTime: "10:00", Status: docket.StatusCancelled},
			},
		},
	})

	return st, NewHandlers(st, config.DefaultConfig())
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultPayload unmarshals a tool result's JSON text content into out.
func resultPayload(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()
	text := result.Content[0].(mcp.TextContent).Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		t.Fatalf("invalid result JSON: %v\n%s", err, text)
	}
}

func TestToolRegistry_Complete(t *testing.T) {
	want := []string{
		"case_list", "event_list",
		"hearing_add", "hearing_update", "hearing_delete",
		"tag_add", "tag_remove",
		"docket_week", "docket_query", "docket_export",
	}

	got := AllToolNames()
	sort.Strings(got)
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("AllToolNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tool[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for name, entry := range toolRegistry {
		if entry.def.Name != name {
			t.Errorf("tool %q has def name %q", name, entry.def.Name)
		}
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"docket_export", "bogus_tool", "hearing_add"})
	if len(unknown) != 1 || unknown[0] != "bogus_tool" {
		t.Errorf("unknown = %v, want [bogus_tool]", unknown)
	}

	if got := ValidateDisabledTools(nil); len(got) != 0 {
		t.Errorf("unknown = %v, want empty", got)
	}
}

func TestHandleCaseList(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleCaseList(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatalf("HandleCaseList failed: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success result")
	}

	var out ops.ListCasesOutput
	resultPayload(t, result, &out)
	if out.Total != 2 {
		t.Errorf("Total = %d, want 2", out.Total)
	}
}

func TestHandleHearingAdd(t *testing.T) {
	st, h := testSetup(t)

	result, err := h.HandleHearingAdd(context.Background(), makeRequest(map[string]any{
		"case_id":    "case-a",
		"title":      "Motion hearing",
		"date":       "2026-03-04",
		"start_time": "13:30",
	}))
	if err != nil {
		t.Fatalf("HandleHearingAdd failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(mcp.TextContent).Text)
	}

	var out ops.AddHearingOutput
	resultPayload(t, result, &out)
	if out.Event.Title != "CV-1001: Motion hearing" {
		t.Errorf("Title = %q, want case-number prefix", out.Event.Title)
	}
	if len(st.Events()) != 3 {
		t.Errorf("len(events) = %d, want 3", len(st.Events()))
	}
}

func TestHandleHearingAdd_ValidationError(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleHearingAdd(context.Background(), makeRequest(map[string]any{
		"case_id": "case-a",
		"title":   "Missing date and start",
	}))
	if err != nil {
		t.Fatalf("handler should not return a Go error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError result")
	}

	var payload struct {
		Error struct {
			Code   string `json:"code"`
			Status int    `json:"status"`
		} `json:"error"`
	}
	resultPayload(t, result, &payload)
	if payload.Error.Code != "INVALID_REQUEST" {
		t.Errorf("error code = %q, want INVALID_REQUEST", payload.Error.Code)
	}
	if payload.Error.Status != 400 {
		t.Errorf("error status = %d, want 400", payload.Error.Status)
	}
}

func TestHandleHearingUpdate(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleHearingUpdate(context.Background(), makeRequest(map[string]any{
		"case_id":    "case-a",
		"hearing_id": "h1",
		"title":      "Initial conference",
		"date":       "2026-03-03",
		"start_time": "11:00",
		"status":     "rescheduled",
	}))
	if err != nil {
		t.Fatalf("HandleHearingUpdate failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(mcp.TextContent).Text)
	}

	var out ops.UpdateHearingOutput
	resultPayload(t, result, &out)
	if out.Event.ID != "h1" {
		t.Errorf("ID = %q, want h1", out.Event.ID)
	}
	if out.Event.Status != docket.StatusRescheduled {
		t.Errorf("Status = %q, want rescheduled", out.Event.Status)
	}
}

func TestHandleHearingDelete_NotFound(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleHearingDelete(context.Background(), makeRequest(map[string]any{
		"hearing_id": "nonexistent",
	}))
	if err != nil {
		t.Fatalf("handler should not return a Go error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError result")
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	resultPayload(t, result, &payload)
	if payload.Error.Code != "NOT_FOUND" {
		t.Errorf("error code = %q, want NOT_FOUND", payload.Error.Code)
	}
}

func TestHandleTagAdd(t *testing.T) {
	st, h := testSetup(t)

	result, err := h.HandleTagAdd(context.Background(), makeRequest(map[string]any{
		"case_id": "case-b",
		"tag":     "appeal",
	}))
	if err != nil {
		t.Fatalf("HandleTagAdd failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(mcp.TextContent).Text)
	}

	var out ops.AddTagOutput
	resultPayload(t, result, &out)
	if len(out.Tags) != 1 || out.Tags[0] != "appeal" {
		t.Errorf("Tags = %v, want [appeal]", out.Tags)
	}
	if out.Color == nil {
		t.Error("expected a palette entry in the result")
	}

	c, _ := st.FindCase("case-b")
	if len(c.Tags) != 1 {
		t.Errorf("store tags = %v, want [appeal]", c.Tags)
	}
}

func TestHandleTagRemove(t *testing.T) {
	st, h := testSetup(t)

	result, err := h.HandleTagRemove(context.Background(), makeRequest(map[string]any{
		"case_id": "case-a",
		"tag":     "civil",
	}))
	if err != nil {
		t.Fatalf("HandleTagRemove failed: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success result")
	}

	c, _ := st.FindCase("case-a")
	if len(c.Tags) != 0 {
		t.Errorf("store tags = %v, want empty", c.Tags)
	}
}

func TestHandleWeek(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleWeek(context.Background(), makeRequest(map[string]any{
		"date": "2026-03-04",
	}))
	if err != nil {
		t.Fatalf("HandleWeek failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(mcp.TextContent).Text)
	}

	var out ops.WeeklyLayoutOutput
	resultPayload(t, result, &out)
	if out.WeekDays[0].String() != "2026-03-02" {
		t.Errorf("WeekDays[0] = %s, want 2026-03-02", out.WeekDays[0])
	}
	if len(out.Days[0].Morning) != 1 {
		t.Errorf("Monday morning = %d events, want 1", len(out.Days[0].Morning))
	}
}

func TestHandleWeek_BadDate(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleWeek(context.Background(), makeRequest(map[string]any{
		"date": "03/04/2026",
	}))
	if err != nil {
		t.Fatalf("handler should not return a Go error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError result for a malformed date")
	}
}

func TestHandleQuery(t *testing.T) {
	_, h := testSetup(t)

	result, err := h.HandleQuery(context.Background(), makeRequest(map[string]any{
		"status": "cancelled",
	}))
	if err != nil {
		t.Fatalf("HandleQuery failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(mcp.TextContent).Text)
	}

	var out ops.QueryListOutput
	resultPayload(t, result, &out)
	if len(out.Groups) != 1 || out.Groups[0].CaseNumber != "CR-2002" {
		t.Errorf("Groups = %+v, want only CR-2002", out.Groups)
	}
}

func TestHandleExport(t *testing.T) {
	_, h := testSetup(t)
	path := filepath.Join(t.TempDir(), "docket.ics")

	result, err := h.HandleExport(context.Background(), makeRequest(map[string]any{
		"path": path,
	}))
	if err != nil {
		t.Fatalf("HandleExport failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(mcp.TextContent).Text)
	}

	var out ops.ExportICSOutput
	resultPayload(t, result, &out)
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}

func TestNewServer_SkipsDisabledTools(t *testing.T) {
	st, _ := testSetup(t)

	cfg := config.DefaultConfig()
	cfg.DisabledTools = []string{"docket_export"}

	// Construction must not panic and must not register the disabled tool;
	// there is no public registry accessor, so this is a smoke check.
	if s := NewServer(st, cfg, "test"); s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestDecode(t *testing.T) {
	req := makeRequest(map[string]any{
		"case_id": "case-a",
		"tag":     "civil",
	})

	got, err := decode[TagRequest](req)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.CaseID != "case-a" || got.Tag != "civil" {
		t.Errorf("decode = %+v, want case-a/civil", got)
	}
}

func TestDecode_WrongType(t *testing.T) {
	req := makeRequest(map[string]any{
		"case_id": 42,
	})

	if _, err := decode[TagRequest](req); err == nil {
		t.Error("decode should fail when a field has the wrong type")
	}
}
