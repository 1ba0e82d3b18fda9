// Package export serializes the board into the spreadsheet file handed to
// the coordinator. The output is one-way; nothing in the system reads it
// back.
package export

import (
	"strings"
	"time"

	"anesthesia-board/internal/models"
)

var header = []string{"OR", "Anesthesiologist", "AHP", "Relief", "Break 1", "Break 2"}

// Encode produces the CSV text: a header row, then one row per site in the
// registry's flattened section order. Every field is wrapped in double
// quotes, matching the spreadsheet the coordinators are used to; the
// encoding/csv writer only quotes on demand, so the quoting is done here.
func Encode(sections []models.Section, rows map[int]models.RowAssignment, breaks map[int][2]bool) string {
	var lines []string
	lines = append(lines, quoteJoin(header))

	index := 0
	for _, sec := range sections {
		for _, site := range sec.Sites {
			row := rows[index]
			pair := breaks[index]
			lines = append(lines, quoteJoin([]string{
				site,
				row.Anesthesiologist,
				row.AHP,
				row.Relief,
				yesNo(pair[0]),
				yesNo(pair[1]),
			}))
			index++
		}
	}
	return strings.Join(lines, "\n")
}

// Filename embeds the calendar date of the export.
func Filename(t time.Time) string {
	return "OR_Schedule_" + t.Format("2006-01-02") + ".csv"
}

func quoteJoin(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
