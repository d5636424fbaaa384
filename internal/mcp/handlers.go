package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/ops"
	"github.com/docketlab/docket/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store *store.Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: st, cfg: cfg}
}

// Request types for each tool

// HearingRequest represents the arguments for hearing_add and hearing_update.
type HearingRequest struct {
	CaseID    string `json:"case_id"`
	HearingID string `json:"hearing_id,omitempty"`
	Title     string `json:"title"`
	Notes     string `json:"notes,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (r HearingRequest) fields() ops.HearingFields {
	return ops.HearingFields{
		Title:     r.Title,
		Notes:     r.Notes,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
	}
}

// HearingDeleteRequest represents the arguments for hearing_delete.
type HearingDeleteRequest struct {
	HearingID string `json:"hearing_id"`
}

// TagRequest represents the arguments for tag_add and tag_remove.
type TagRequest struct {
	CaseID string `json:"case_id"`
	Tag    string `json:"tag"`
}

// WeekRequest represents the arguments for docket_week.
type WeekRequest struct {
	Date string `json:"date,omitempty"`
}

// QueryRequest represents the arguments for docket_query.
type QueryRequest struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

// ExportRequest represents the arguments for docket_export.
type ExportRequest struct {
	Path string `json:"path"`
}

// Handler implementations

// HandleCaseList handles the case_list tool call.
func (h *Handlers) HandleCaseList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(ops.ListCases(h.store))
}

// HandleEventList handles the event_list tool call.
func (h *Handlers) HandleEventList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(ops.ListEvents(h.store))
}

// HandleHearingAdd handles the hearing_add tool call.
func (h *Handlers) HandleHearingAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HearingRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddHearing(h.store, ops.AddHearingInput{
		CaseID:  input.CaseID,
		Hearing: input.fields(),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleHearingUpdate handles the hearing_update tool call.
func (h *Handlers) HandleHearingUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HearingRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.UpdateHearing(h.store, ops.UpdateHearingInput{
		CaseID:    input.CaseID,
		HearingID: input.HearingID,
		Hearing:   input.fields(),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleHearingDelete handles the hearing_delete tool call.
func (h *Handlers) HandleHearingDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HearingDeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.RemoveHearing(h.store, ops.RemoveHearingInput{HearingID: input.HearingID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTagAdd handles the tag_add tool call.
func (h *Handlers) HandleTagAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TagRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddTag(h.store, ops.AddTagInput{CaseID: input.CaseID, Tag: input.Tag})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTagRemove handles the tag_remove tool call.
func (h *Handlers) HandleTagRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TagRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.RemoveTag(h.store, ops.RemoveTagInput{CaseID: input.CaseID, Tag: input.Tag})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleWeek handles the docket_week tool call.
func (h *Handlers) HandleWeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[WeekRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	ref := docket.DateOf(time.Now())
	if input.Date != "" {
		ref, err = docket.ParseDate(input.Date)
		if err != nil {
			return errorResult(errors.NewInvalidRequest(err.Error())), nil
		}
	}

	result := ops.WeeklyLayout(h.store.Events(), ops.WeeklyLayoutInput{Reference: ref})
	return successResult(result)
}

// HandleQuery handles the docket_query tool call.
func (h *Handlers) HandleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QueryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.QueryList(h.store.Cases(), h.store.Events(), ops.QueryListInput{
		Search: input.Search,
		Status: ops.StatusFilter(input.Status),
		Sort:   ops.SortKey(input.Sort),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the docket_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ExportICS(h.store.Events(), ops.ExportICSInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if dErr, ok := err.(*errors.DocketError); ok {
		errorObj := map[string]any{
			"code":    dErr.Code,
			"message": dErr.Message,
			"status":  dErr.Status,
		}
		if dErr.Code != errors.ErrInternal && dErr.Details != nil {
			errorObj["details"] = dErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
