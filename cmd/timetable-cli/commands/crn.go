package commands

import (
	"fmt"
	"vttimetable/lib/scrapers/timetable"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(crnCmd)
}

var crnCmd = &cobra.Command{
	Use:   "crn <crn>",
	Short: "Looks up a single section by CRN and reports whether it has open seats.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := newClient(cfg)
		term := resolveTerm(cfg)

		course, found, err := client.GetCRN(cmd.Context(), term, args[0])
		if err != nil {
			fatal("crn lookup failed", err)
		}
		if !found {
			fmt.Printf("no section with crn %s\n", args[0])
			return
		}

		open, err := client.HasOpenSeats(cmd.Context(), term, args[0])
		if err != nil {
			fatal("open seats check failed", err)
		}

		renderCourses([]timetable.Course{course})
		if open {
			fmt.Println("seats are open")
		} else {
			fmt.Println("no open seats")
		}
	},
}
