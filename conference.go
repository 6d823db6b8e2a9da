package cfptime

import (
	"fmt"
	"strings"
	"time"
)

// Conference is one conference/CFP listing as returned by the API.
// It is constructed only by decoding a server response; the client
// never mutates it. Date fields are kept as strings because the API
// emits more than one format; use the accessor methods to parse them.
type Conference struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	CFPDeadline     string `json:"cfp_deadline"`
	ConfStartDate   string `json:"conf_start_date"`
	City            string `json:"city"`
	Province        string `json:"province"`
	Country         string `json:"country"`
	Twitter         string `json:"twitter"`
	Website         string `json:"website"`
	CFPDetails      string `json:"cfp_details"`
	SpeakerBenefits string `json:"speaker_benefits"`
	CodeOfConduct   string `json:"code_of_conduct"`
	CreatedAt       string `json:"created_at"`
	NumberOfDays    int    `json:"number_of_days"`
}

// dateLayouts are the formats the API has been observed to emit,
// tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// Location returns the city, province and country joined into a single
// display string, skipping empty parts.
func (c *Conference) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.City, c.Province, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// DeadlineTime parses the CFP deadline.
func (c *Conference) DeadlineTime() (time.Time, error) {
	return parseDate(c.CFPDeadline)
}

// StartTime parses the conference start date.
func (c *Conference) StartTime() (time.Time, error) {
	return parseDate(c.ConfStartDate)
}

// EndTime returns the last day of the conference, derived from the
// start date and the number of days the conference runs.
func (c *Conference) EndTime() (time.Time, error) {
	start, err := c.StartTime()
	if err != nil {
		return time.Time{}, err
	}
	days := c.NumberOfDays
	if days < 1 {
		days = 1
	}
	return start.AddDate(0, 0, days-1), nil
}

// CFPOpenAt reports whether the call for papers is still open at t.
// It returns false when the deadline cannot be parsed.
func (c *Conference) CFPOpenAt(t time.Time) bool {
	deadline, err := c.DeadlineTime()
	if err != nil {
		return false
	}
	return t.Before(deadline)
}
