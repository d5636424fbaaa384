package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/errors"
	"github.com/docketlab/docket/internal/store"
)

// seedCase mirrors docket.Case with loosely-typed hearing fields so seed
// files can omit ids and statuses.
type seedCase struct {
	ID          string        `json:"id,omitempty"`
	Number      string        `json:"number"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Hearings    []seedHearing `json:"hearings,omitempty"`
}

type seedHearing struct {
	ID string `json:"id,omitempty"`
	HearingFields
}

// LoadCasesInput contains parameters for the LoadCases operation.
type LoadCasesInput struct {
	Path string `json:"path"` // required, a JSON array of cases
}

// LoadCasesOutput contains the result of the LoadCases operation.
type LoadCasesOutput struct {
	Cases    []docket.Case `json:"cases"`
	Count    int           `json:"count"`
	Hearings int           `json:"hearings"`
}

// LoadCases reads a seed file into a case collection ready for store.New:
// required fields are checked, missing ids get fresh ULIDs, tags are trimmed
// and deduplicated preserving first appearance, and hearing statuses default
// to "new".
func LoadCases(input LoadCasesInput) (*LoadCasesOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("seed file", input.Path)
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to read seed file: %w", err))
	}

	var seeds []seedCase
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("invalid seed file: %v", err))
	}

	cases := make([]docket.Case, 0, len(seeds))
	hearings := 0
	for i, sc := range seeds {
		number := strings.TrimSpace(sc.Number)
		if number == "" {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("case %d: number is required", i))
		}
		title := strings.TrimSpace(sc.Title)
		if title == "" {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("case %d (%s): title is required", i, number))
		}

		c := docket.Case{
			ID:          sc.ID,
			Number:      number,
			Title:       title,
			Description: sc.Description,
			Tags:        dedupeTags(sc.Tags),
		}
		if c.ID == "" {
			c.ID = store.NewID()
		}

		for j, sh := range sc.Hearings {
			h, err := sh.HearingFields.validate()
			if err != nil {
				return nil, errors.NewInvalidRequest(fmt.Sprintf("case %s hearing %d: %v", number, j, err))
			}
			h.ID = sh.ID
			if h.ID == "" {
				h.ID = store.NewID()
			}
			c.Hearings = append(c.Hearings, h)
			hearings++
		}

		cases = append(cases, c)
	}

	return &LoadCasesOutput{Cases: cases, Count: len(cases), Hearings: hearings}, nil
}

// dedupeTags trims tags and drops empties and duplicates, preserving first
// appearance order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
