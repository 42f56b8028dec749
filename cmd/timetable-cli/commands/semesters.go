package commands

import (
	"sort"
	"vttimetable/lib/scrapers/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(semestersCmd)
}

var semesterNames = map[timetable.Semester]string{
	timetable.SemesterSpring: "Spring",
	timetable.SemesterSummer: "Summer",
	timetable.SemesterFall:   "Fall",
	timetable.SemesterWinter: "Winter",
}

var semestersCmd = &cobra.Command{
	Use:   "semesters",
	Short: "Lists the terms the timetable currently accepts.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := newClient(cfg)

		options, err := client.Semesters(cmd.Context())
		if err != nil {
			fatal("failed to list semesters", err)
		}

		sorted := make([]timetable.TermOption, 0, len(options))
		for option := range options {
			sorted = append(sorted, option)
		}
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Year != sorted[j].Year {
				return sorted[i].Year < sorted[j].Year
			}
			return sorted[i].Semester < sorted[j].Semester
		})

		t := newTable()
		t.AppendHeader(table.Row{"Semester", "Year"})
		for _, option := range sorted {
			t.AppendRow(table.Row{semesterNames[option.Semester], option.Year})
		}
		t.Render()
	},
}
