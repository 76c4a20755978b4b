// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/pdiddy/citation-panel/pkg/types"
)

// CrossRef API JSON structures.
type worksResponse struct {
	Status  string       `json:"status"`
	Message *workMessage `json:"message"`
}

type workMessage struct {
	DOI               string       `json:"DOI"`
	Title             flexText     `json:"title"`
	ReferencedByCount int          `json:"is-referenced-by-count"`
	Author            []author     `json:"author"`
	ContainerTitle    flexText     `json:"container-title"`
	Publisher         string       `json:"publisher"`
	Type              string       `json:"type"`
	URL               string       `json:"URL"`
	Issued            crossrefDate `json:"issued"`
}

type author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}

// flexText accepts either a JSON string or an array of strings. CrossRef
// sends arrays; arrays are joined with "," the way the panel has always
// shown multi-valued titles.
type flexText string

func (f *flexText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var parts []string
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		*f = flexText(strings.Join(parts, ","))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexText(s)
	return nil
}

func (m *workMessage) toWork() *types.Work {
	w := &types.Work{
		DOI:               m.DOI,
		Title:             string(m.Title),
		ReferencedByCount: m.ReferencedByCount,
		ContainerTitle:    string(m.ContainerTitle),
		Publisher:         m.Publisher,
		Type:              m.Type,
		URL:               m.URL,
	}

	for _, a := range m.Author {
		name := strings.TrimSpace(a.Given + " " + a.Family)
		if name == "" {
			name = strings.TrimSpace(a.Name)
		}
		if name != "" {
			w.Authors = append(w.Authors, name)
		}
	}

	if len(m.Issued.DateParts) > 0 {
		if t := partsToTime(m.Issued.DateParts[0]); !t.IsZero() {
			w.Issued = &t
		}
	}
	return w
}

// partsToTime converts a CrossRef date-parts entry, which may carry only a
// year or a year and month.
func partsToTime(parts []int) time.Time {
	if len(parts) == 0 || parts[0] == 0 {
		return time.Time{}
	}
	month, day := 1, 1
	if len(parts) >= 2 && parts[1] > 0 {
		month = parts[1]
	}
	if len(parts) >= 3 && parts[2] > 0 {
		day = parts[2]
	}
	return time.Date(parts[0], time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
