package ops

import (
	"strings"

	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/store"
)

// AddTagInput contains parameters for the AddTag operation.
type AddTagInput struct {
	CaseID string `json:"case_id"`
	Tag    string `json:"tag"`
}

// AddTagOutput contains the result of the AddTag operation.
type AddTagOutput struct {
	CaseID string               `json:"case_id"`
	Tags   []string             `json:"tags"`
	Color  *docket.PaletteEntry `json:"color,omitempty"`
}

// AddTag appends a tag to a case. Adding an existing tag or a tag that trims
// to empty is an accepted no-op; the output reflects the case's tag sequence
// either way.
func AddTag(st *store.Store, input AddTagInput) (*AddTagOutput, error) {
	if strings.TrimSpace(input.CaseID) == "" {
		return nil, errors.NewInvalidRequest("case_id is required")
	}

	if !st.AddTag(input.CaseID, input.Tag) {
		return nil, errors.NewNotFound("case", input.CaseID)
	}

	c, _ := st.FindCase(input.CaseID)
	out := &AddTagOutput{CaseID: c.ID, Tags: c.Tags}
	if tag := strings.TrimSpace(input.Tag); tag != "" {
		color := docket.ColorFor(tag)
		out.Color = &color
	}
	return out, nil
}

// RemoveTagInput contains parameters for the RemoveTag operation.
type RemoveTagInput struct {
	CaseID string `json:"case_id"`
	Tag    string `json:"tag"`
}

// RemoveTagOutput contains the result of the RemoveTag operation.
type RemoveTagOutput struct {
	CaseID string   `json:"case_id"`
	Tags   []string `json:"tags"`
}

// RemoveTag removes the first exact match of a tag from a case. Removing an
// absent tag is an accepted no-op.
func RemoveTag(st *store.Store, input RemoveTagInput) (*RemoveTagOutput, error) {
	if strings.TrimSpace(input.CaseID) == "" {
		return nil, errors.NewInvalidRequest("case_id is required")
	}

	if !st.RemoveTag(input.CaseID, input.Tag) {
		return nil, errors.NewNotFound("case", input.CaseID)
	}

	c, _ := st.FindCase(input.CaseID)
	return &RemoveTagOutput{CaseID: c.ID, Tags: c.Tags}, nil
}
