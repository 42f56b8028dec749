package commands

import (
	"sort"
	"vttimetable/lib/scrapers/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(subjectsCmd)
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Lists the subjects the timetable knows about.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := newClient(cfg)

		subjects, err := client.Subjects(cmd.Context())
		if err != nil {
			fatal("failed to list subjects", err)
		}

		sorted := make([]timetable.Subject, 0, len(subjects))
		for subject := range subjects {
			sorted = append(sorted, subject)
		}
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Abbreviation < sorted[j].Abbreviation
		})

		t := newTable()
		t.AppendHeader(table.Row{"Abbreviation", "Subject"})
		for _, subject := range sorted {
			t.AppendRow(table.Row{subject.Abbreviation, subject.Name})
		}
		t.Render()
	},
}
