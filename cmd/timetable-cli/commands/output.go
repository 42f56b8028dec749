package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"vttimetable/lib/scrapers/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var dayOrder = []timetable.Day{
	timetable.Monday,
	timetable.Tuesday,
	timetable.Wednesday,
	timetable.Thursday,
	timetable.Friday,
	timetable.Saturday,
	timetable.Sunday,
}

func formatSchedule(schedule timetable.Schedule) string {
	var lines []string
	for _, day := range dayOrder {
		meetings := make([]timetable.Meeting, 0, len(schedule[day]))
		for m := range schedule[day] {
			meetings = append(meetings, m)
		}
		sort.Slice(meetings, func(i, j int) bool {
			return meetings[i].Start < meetings[j].Start
		})
		for _, m := range meetings {
			lines = append(lines, fmt.Sprintf("%s %s-%s %s", day, m.Start, m.End, m.Location))
		}
	}
	return strings.Join(lines, "\n")
}

func renderCourses(courses []timetable.Course) {
	t := newTable()
	t.AppendHeader(table.Row{
		"CRN", "Course", "Title", "Type", "Modality",
		"Credits", "Seats", "Professor", "Schedule",
	})
	for _, c := range courses {
		t.AppendRow(table.Row{
			c.CRN,
			fmt.Sprintf("%s-%s", c.Subject, c.Code),
			c.Name,
			c.SectionType,
			c.Modality,
			c.CreditHours,
			c.Capacity,
			c.Professor,
			formatSchedule(c.Schedule),
		})
	}
	t.Render()
}
