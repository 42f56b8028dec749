package commands

import (
	"fmt"
	"vttimetable/lib/scrapers/timetable"

	"github.com/spf13/cobra"
)

var (
	subjectFlag     *string
	codeFlag        *string
	searchCrnFlag   *string
	campusFlag      *string
	pathwayFlag     *string
	sectionTypeFlag *string
	modalityFlag    *string
	openFlag        *bool
)

func init() {
	subjectFlag = searchCmd.Flags().String("subject", "", "Subject abbreviation, e.g. CS.")
	codeFlag = searchCmd.Flags().String("code", "", "Course number, e.g. 1114.")
	searchCrnFlag = searchCmd.Flags().String("crn", "", "Course request number.")
	campusFlag = searchCmd.Flags().String("campus", "", "blacksburg or virtual.")
	pathwayFlag = searchCmd.Flags().String("pathway", "", "Pathways/CLE designation, e.g. cle1, 6a.")
	sectionTypeFlag = searchCmd.Flags().String("type", "", "Section type, e.g. lecture, lab, online.")
	modalityFlag = searchCmd.Flags().String("modality", "", "in-person, hybrid, online-sync or online-async.")
	openFlag = searchCmd.Flags().Bool("open", false, "Only sections with open seats.")
	rootCmd.AddCommand(searchCmd)
}

func searchOptionsFromFlags() timetable.SearchOptions {
	campus, err := parseCampus(*campusFlag)
	if err != nil {
		fatal("invalid campus", err)
	}
	pathway, err := parsePathway(*pathwayFlag)
	if err != nil {
		fatal("invalid pathway", err)
	}
	sectionType, err := parseSectionType(*sectionTypeFlag)
	if err != nil {
		fatal("invalid section type", err)
	}
	modality, err := parseModality(*modalityFlag)
	if err != nil {
		fatal("invalid modality", err)
	}

	status := timetable.StatusAll
	if *openFlag {
		status = timetable.StatusOpen
	}

	return timetable.SearchOptions{
		Campus:      campus,
		Pathway:     pathway,
		Subject:     *subjectFlag,
		SectionType: sectionType,
		Code:        *codeFlag,
		CRN:         *searchCrnFlag,
		Status:      status,
		Modality:    modality,
	}
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Searches the timetable with the given filters and prints matching sections.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := newClient(cfg)
		term := resolveTerm(cfg)

		courses, err := client.Search(cmd.Context(), term, searchOptionsFromFlags())
		if err != nil {
			fatal("search failed", err)
		}
		if len(courses) == 0 {
			fmt.Println("no sections matched")
			return
		}
		renderCourses(courses)
	},
}
