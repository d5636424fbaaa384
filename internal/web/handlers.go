package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/ops"
	"github.com/docketlab/docket/internal/store"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	store    *store.Store
	cfg      *config.Config
	renderer *Renderer
}

// HandleWeek handles GET /week, the weekly timeline.
func (h *Handlers) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ref := docket.DateOf(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := docket.ParseDate(raw)
		if err != nil {
			h.renderer.renderError(w, r, errors.NewInvalidRequest(err.Error()))
			return
		}
		ref = parsed
	}

	layout := ops.WeeklyLayout(h.store.Events(), ops.WeeklyLayoutInput{Reference: ref})

	h.renderer.renderPage(w, "week", WeekPageData{
		PageData: PageData{
			Title:   "Week of " + layout.WeekDays[0].String(),
			Version: h.renderer.version,
			Nav:     "week",
		},
		Reference: ref.String(),
		PrevDate:  ops.Navigate(ref, ops.DirectionPrev).String(),
		NextDate:  ops.Navigate(ref, ops.DirectionNext).String(),
		Days:      layout.Days,
	})
}

// HandleCases handles GET /cases, the grouped list view.
func (h *Handlers) HandleCases(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = h.cfg.DefaultSort
	}

	result, err := ops.QueryList(h.store.Cases(), h.store.Events(), ops.QueryListInput{
		Search: query,
		Status: ops.StatusFilter(status),
		Sort:   ops.SortKey(sortKey),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "cases", CasesPageData{
		PageData: PageData{
			Title:   "Cases",
			Version: h.renderer.version,
			Nav:     "cases",
		},
		Query:   query,
		Status:  status,
		Sort:    sortKey,
		Groups:  result.Groups,
		Total:   result.Total,
		Filters: []string{"all", "new", "rescheduled", "cancelled"},
		Sorts:   []string{"date", "case", "title"},
	})
}

// HandleCaseDetail handles GET /cases/{id}, one case with its hearings.
func (h *Handlers) HandleCaseDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	c, ok := h.store.FindCase(id)
	if !ok {
		h.renderer.renderError(w, r, errors.NewNotFound("case", id))
		return
	}

	events := make([]docket.Event, 0, len(c.Hearings))
	for _, e := range h.store.Events() {
		if e.ParentID == c.ID {
			events = append(events, e)
		}
	}

	h.renderer.renderPage(w, "detail", CaseDetailPageData{
		PageData: PageData{
			Title:   c.Number + " — " + c.Title,
			Version: h.renderer.version,
			Nav:     "cases",
		},
		Case:         c,
		RenderedHTML: renderMarkdown(c.Description),
		Events:       events,
	})
}

// HandleAddTag handles POST /cases/{id}/tags.
func (h *Handlers) HandleAddTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := ops.AddTag(h.store, ops.AddTagInput{
		CaseID: id,
		Tag:    r.FormValue("tag"),
	}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/cases/"+url.PathEscape(id), http.StatusSeeOther)
}

// HandleRemoveTag handles POST /cases/{id}/tags/remove.
func (h *Handlers) HandleRemoveTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := ops.RemoveTag(h.store, ops.RemoveTagInput{
		CaseID: id,
		Tag:    r.FormValue("tag"),
	}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/cases/"+url.PathEscape(id), http.StatusSeeOther)
}

// HandleRemoveHearing handles POST /hearings/{id}/delete.
func (h *Handlers) HandleRemoveHearing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, err := ops.RemoveHearing(h.store, ops.RemoveHearingInput{HearingID: id}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	back := r.FormValue("back")
	if back == "" || back[0] != '/' {
		back = "/cases"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
