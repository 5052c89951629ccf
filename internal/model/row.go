package model

import "strings"

// Row is one form row as entered by the user. Date, CheckIn and CheckOut are
// kept as raw strings; they are parsed only when the log is recomputed.
type Row struct {
	ID       string `json:"id,omitempty"`
	Date     string `json:"date"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	NextDay  bool   `json:"next_day"`
}

// IsBlank reports whether the row has no date and no times.
func (r Row) IsBlank() bool {
	return strings.TrimSpace(r.Date) == "" &&
		strings.TrimSpace(r.CheckIn) == "" &&
		strings.TrimSpace(r.CheckOut) == ""
}

// Sheet is the top-level structure stored in a sheet document.
type Sheet struct {
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}
