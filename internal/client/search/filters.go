// Package search keeps the post-browsing filter state consistent with the
// outgoing request parameters, the shareable query string, and the fetched
// result page.
package search

import (
	"fmt"
	"net/url"
	"strconv"
)

// Filters is the browse/search filter state. All fields are optional except
// Page, which is a positive integer defaulting to 1.
type Filters struct {
	Q              string
	Company        string
	Position       string
	Difficulty     string
	ExperienceType string
	Outcome        string
	Page           int
}

// Default returns the empty filter state on page 1.
func Default() Filters {
	return Filters{Page: 1}
}

// fields maps parameter names to values, in a fixed order.
func (f Filters) fields() [][2]string {
	return [][2]string{
		{"q", f.Q},
		{"company", f.Company},
		{"position", f.Position},
		{"difficulty", f.Difficulty},
		{"experienceType", f.ExperienceType},
		{"outcome", f.Outcome},
	}
}

// Query builds the outgoing request parameters. Blank fields are omitted
// rather than sent as empty strings; page is always carried.
func (f Filters) Query() url.Values {
	v := url.Values{}
	for _, kv := range f.fields() {
		if kv[1] != "" {
			v.Set(kv[0], kv[1])
		}
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	return v
}

// Encode builds the shareable query string mirror: blank fields and the page
// are omitted, so a pristine state encodes to nothing at all.
func (f Filters) Encode() url.Values {
	v := url.Values{}
	for _, kv := range f.fields() {
		if kv[1] != "" {
			v.Set(kv[0], kv[1])
		}
	}
	return v
}

// Decode reconstructs filter state from a query-string mirror. Missing or
// malformed page values default to 1.
func Decode(v url.Values) Filters {
	f := Filters{
		Q:              v.Get("q"),
		Company:        v.Get("company"),
		Position:       v.Get("position"),
		Difficulty:     v.Get("difficulty"),
		ExperienceType: v.Get("experienceType"),
		Outcome:        v.Get("outcome"),
		Page:           1,
	}
	if p, err := strconv.Atoi(v.Get("page")); err == nil && p > 0 {
		f.Page = p
	}
	return f
}

// Set assigns a filter field by its parameter name. Unknown names are
// rejected. Setting any non-page field resets the page to 1.
func (f *Filters) Set(name, value string) error {
	switch name {
	case "q":
		f.Q = value
	case "company":
		f.Company = value
	case "position":
		f.Position = value
	case "difficulty":
		f.Difficulty = value
	case "experienceType":
		f.ExperienceType = value
	case "outcome":
		f.Outcome = value
	default:
		return fmt.Errorf("unknown filter %q", name)
	}
	f.Page = 1
	return nil
}
