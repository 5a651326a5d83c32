package services

import (
	"strconv"
	"strings"
)

// Table is a column-ordered, row-ordered projection of one dashboard
// section — the shape print and export consumers work with. Building one
// never mutates the bucket it came from.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Project returns a copy of the table with the excluded columns removed,
// preserving column and row order. Column names compare case-insensitively.
// The externally shared permit and appointment prints drop "Agent".
func Project(t Table, excluded []string) Table {
	if len(excluded) == 0 {
		return t
	}

	drop := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		drop[strings.ToLower(name)] = true
	}

	var keep []int
	out := Table{Title: t.Title}
	for i, col := range t.Columns {
		if drop[strings.ToLower(col)] {
			continue
		}
		keep = append(keep, i)
		out.Columns = append(out.Columns, col)
	}

	for _, row := range t.Rows {
		projected := make([]string, 0, len(keep))
		for _, i := range keep {
			if i < len(row) {
				projected = append(projected, row[i])
			} else {
				projected = append(projected, "")
			}
		}
		out.Rows = append(out.Rows, projected)
	}

	return out
}

func DepthTable(title string, rows []DepthRow) Table {
	t := Table{Title: title, Columns: []string{"SN", "Name", "Agent", "Submitted Date", "Physical Date"}}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i+1), r.Name, r.Agent, r.Submitted, r.Physical})
	}
	return t
}

func OfficeApplicantsTable(rows []OfficeApplicantRow) Table {
	t := Table{Title: "All Office Applicants", Columns: []string{"SN", "Name", "Country", "Agent", "Progress"}}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i+1), r.Name, r.Country, r.Agent, r.Progress})
	}
	return t
}

func AppointmentsTable(title string, rows []AppointmentRow) Table {
	t := Table{Title: title, Columns: []string{"SN", "Applicant", "Agent", "Contact", "Appointment Date"}}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i+1), r.Applicant, r.Agent, r.Contact, r.Appointment})
	}
	return t
}

func PassportTable(title string, rows []PassportRow) Table {
	t := Table{Title: title, Columns: []string{"SN", "Applicant", "Contact", "Agent", "Passport Status", "Expiry Date"}}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i+1), r.Name, r.Contact, r.Agent, string(r.Status), r.Expiry})
	}
	return t
}

func PccTable(rows []PccValidityRow) Table {
	t := Table{Title: "PCC Records", Columns: []string{"SN", "Applicant", "Status", "Issued At", "Validity", "Remarks"}}
	for i, r := range rows {
		validity := string(r.Validity)
		if r.Validity == PccUnknown {
			validity = ""
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(i+1), r.Applicant, r.Process, r.IssuedAt, validity, r.Remarks})
	}
	return t
}

func ReadyTable(rows []ReadyRow) Table {
	t := Table{Title: "Ready To Apply", Columns: []string{"SN", "Applicant", "Country", "Contact", "Agent", "Total Paid"}}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i+1), r.Name, r.Country, r.Contact, r.Agent, r.TotalPaid.StringFixed(2)})
	}
	return t
}

