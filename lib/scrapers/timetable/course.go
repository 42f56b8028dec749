package timetable

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Meeting is one scheduled block of a section: a start time, an end
// time and a location, all kept as the timetable prints them.
type Meeting struct {
	Start    string
	End      string
	Location string
}

// Schedule maps meeting days to the deduplicated set of meetings held
// on them. Arranged never appears as a key.
type Schedule map[Day]map[Meeting]struct{}

func (s Schedule) add(day Day, m Meeting) {
	if s[day] == nil {
		s[day] = map[Meeting]struct{}{}
	}
	s[day][m] = struct{}{}
}

// Course is one parsed timetable entry. It is a plain value built
// once from its source rows; treat it as read-only.
type Course struct {
	Year     string
	Semester Semester
	CRN      string
	Subject  string
	Code     string
	Name     string

	SectionType SectionType
	// Modality is left zero when the timetable lists none for the
	// section.
	Modality    Modality
	CreditHours string
	Capacity    string
	Professor   string

	Schedule Schedule
}

func (c Course) String() string {
	days := make([]string, 0, len(c.Schedule))
	for day := range c.Schedule {
		days = append(days, string(day))
	}
	sort.Strings(days)
	return fmt.Sprintf(
		"%s-%s %q crn=%s type=%s days=%s",
		c.Subject, c.Code, c.Name, c.CRN, c.SectionType,
		strings.Join(days, ","),
	)
}

// continuation rows announce themselves with this label in the
// modality cell.
const additionalTimesMarker = "* Additional Times *"

var sectionTypesByLetter = map[string]SectionType{
	"I": SectionTypeIndependentStudy,
	"B": SectionTypeLab,
	"L": SectionTypeLecture,
	"C": SectionTypeRecitation,
	"R": SectionTypeResearch,
	"O": SectionTypeOnline,
}

var modalitiesByLabel = map[string]Modality{
	"Face-to-Face Instruction":       ModalityInPerson,
	"Hybrid (F2F & Online Instruc.)": ModalityHybrid,
	"Online with Synchronous Mtgs.":  ModalityOnlineSync,
	"Online: Asynchronous":           ModalityOnlineAsync,
}

var daysByLetter = map[string]Day{
	"M":     Monday,
	"T":     Tuesday,
	"W":     Wednesday,
	"R":     Thursday,
	"F":     Friday,
	"S":     Saturday,
	"U":     Sunday,
	"(ARR)": Arranged,
}

var (
	subjectCodeRegex      = regexp.MustCompile(`^(.+)-(.+)$`)
	summerDatePrefixRegex = regexp.MustCompile(`- \d{2}-[A-Z]{3}-\d{4}(.+)$`)
	sectionLetterRegex    = regexp.MustCompile(`^[LBICR]`)
)

// buildCourse turns a primary course row, plus the row that follows it
// as a continuation candidate, into a Course. next may be nil. Any
// field that fails its pattern aborts the build; a missing modality
// and an arranged-only schedule are the only tolerated gaps.
func buildCourse(year string, semester Semester, row []string, next []string) (Course, error) {
	if len(row) < courseRowCells {
		return Course{}, StructureError{Message: fmt.Sprintf(
			"course row has %d cells, expected at least %d", len(row), courseRowCells,
		)}
	}

	if len(row[0]) < 5 {
		return Course{}, ParseError{Field: "crn", Value: row[0]}
	}
	crn := row[0][:5]

	groups := subjectCodeRegex.FindStringSubmatch(row[1])
	if groups == nil {
		return Course{}, ParseError{Field: "subject and code", Value: row[1]}
	}
	subject, code := groups[1], groups[2]

	name := row[2]
	if semester == SemesterSummer {
		// summer listings prefix the title with a "- DD-MMM-YYYY"
		// session start stamp
		groups := summerDatePrefixRegex.FindStringSubmatch(name)
		if groups == nil {
			return Course{}, ParseError{Field: "summer course name", Value: name}
		}
		name = groups[1]
	}

	var sectionLetter string
	if strings.HasPrefix(row[3], "ONLINE COURSE") {
		sectionLetter = "O"
	} else {
		sectionLetter = sectionLetterRegex.FindString(row[3])
		if sectionLetter == "" {
			return Course{}, ParseError{Field: "section type", Value: row[3]}
		}
	}

	schedule := Schedule{}
	err := addMeetings(schedule, row)
	if err != nil {
		return Course{}, err
	}
	if len(next) > 4 && next[4] == additionalTimesMarker {
		if len(next) < courseRowCells {
			return Course{}, StructureError{Message: fmt.Sprintf(
				"continuation row has %d cells, expected at least %d", len(next), courseRowCells,
			)}
		}
		err := addMeetings(schedule, next)
		if err != nil {
			return Course{}, err
		}
	}

	return Course{
		Year:        year,
		Semester:    semester,
		CRN:         crn,
		Subject:     subject,
		Code:        code,
		Name:        name,
		SectionType: sectionTypesByLetter[sectionLetter],
		Modality:    modalitiesByLabel[row[4]],
		CreditHours: row[5],
		Capacity:    row[6],
		Professor:   row[7],
		Schedule:    schedule,
	}, nil
}

func addMeetings(schedule Schedule, row []string) error {
	meeting := Meeting{
		Start:    row[9],
		End:      row[10],
		Location: row[11],
	}
	// the day cell usually holds space-separated letters ("M W F"),
	// but letters render glued together ("MW") when the markup drops
	// its separators, so each token is also walked letter by letter.
	for _, token := range strings.Fields(row[8]) {
		if day, ok := daysByLetter[token]; ok {
			if day != Arranged {
				schedule.add(day, meeting)
			}
			continue
		}
		for _, r := range token {
			day, ok := daysByLetter[string(r)]
			if !ok || day == Arranged {
				return ParseError{Field: "meeting day", Value: token}
			}
			schedule.add(day, meeting)
		}
	}
	return nil
}
