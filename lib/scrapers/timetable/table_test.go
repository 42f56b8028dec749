package timetable

import (
	"bytes"
	"strings"
	"testing"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

//go:embed timetable_page_test.html
var timetablePageTest []byte

func TestCourseTableRows(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(timetablePageTest))
	require.NoError(t, err)

	rows, err := courseTableRows(doc)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	require.Equal(t, "CRN", rows[0][0])

	require.Len(t, rows[1], 12)
	require.Equal(t, "12345X", rows[1][0])
	require.Equal(t, "CS-1114", rows[1][1])
	// the &nbsp; in the schedule type cell flattens to a plain space
	require.Equal(t, "L 01", rows[1][3])
	require.Equal(t, "M W", rows[1][8])

	require.Equal(t, "", rows[2][0])
	require.Equal(t, "* Additional Times *", rows[2][4])

	require.Equal(t, "54321 - Comments", rows[3][0])
}

func TestCourseTableMissing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><body><table><tr><td>only</td></tr></table></body></html>",
	))
	require.NoError(t, err)

	_, err = courseTableRows(doc)
	var structErr StructureError
	require.ErrorAs(t, err, &structErr)
}
