package timetable

import (
	"fmt"
	"vttimetable/lib/htmlutil"
	"vttimetable/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// the course listing is the fifth table on the results page. this is a
// fixed assumption about the upstream layout; when the page changes,
// this file is the only place that knows where the listing lives.
const courseTableIndex = 4

// a course row carries cells 0-11: identifier, subject-code, title,
// section type, modality, credit hours, capacity, professor, days,
// start time, end time, location.
const courseRowCells = 12

// courseTableRows returns the rows of the course listing table as
// cleaned cell-text slices, header row included.
func courseTableRows(doc *goquery.Document) ([][]string, error) {
	tables := doc.Find("table")
	if tables.Length() <= courseTableIndex {
		return nil, StructureError{Message: fmt.Sprintf(
			"expected at least %d tables in the response, found %d",
			courseTableIndex+1, tables.Length(),
		)}
	}

	var rows [][]string
	tables.Eq(courseTableIndex).Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			text := ""
			if len(cell.Nodes) > 0 {
				text = htmlutil.GetText(cell.Nodes[0])
			}
			cells = append(cells, textutil.CollapseSpace(text))
		})
		rows = append(rows, cells)
	})
	return rows, nil
}
