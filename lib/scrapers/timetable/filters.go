package timetable

// Campus selects which campus's sections to search.
type Campus string

const (
	CampusBlacksburg Campus = "0"
	CampusVirtual    Campus = "10"
)

// Semester is the academic period within a year. Values are the
// two-digit suffixes the timetable appends to the calendar year to
// form a term key.
type Semester string

const (
	SemesterSpring Semester = "01"
	SemesterSummer Semester = "06"
	SemesterFall   Semester = "09"
	SemesterWinter Semester = "12"
)

// Pathway selects a Pathways/CLE general-education designation.
//
// The upstream timetable form reuses the code "G02" for Pathway 2, 4,
// 5A and 5F. Each named pathway gets its own code here so selecting
// one never silently searches another.
type Pathway string

const (
	PathwayAll Pathway = "AR%"
	CLE1       Pathway = "AR01"
	CLE2       Pathway = "AR02"
	CLE3       Pathway = "AR03"
	CLE4       Pathway = "AR04"
	CLE5       Pathway = "AR05"
	CLE6       Pathway = "AR06"
	CLE7       Pathway = "AR07"
	Pathway1A  Pathway = "G01A"
	Pathway1F  Pathway = "G01F"
	Pathway2   Pathway = "G02"
	Pathway3   Pathway = "G03"
	Pathway4   Pathway = "G04"
	Pathway5A  Pathway = "G05A"
	Pathway5F  Pathway = "G05F"
	Pathway6A  Pathway = "G06A"
	Pathway6D  Pathway = "G06D"
	Pathway7   Pathway = "G07"
)

// SectionType is the kind of instruction a section delivers.
type SectionType string

const (
	SectionTypeAll              SectionType = "%"
	SectionTypeIndependentStudy SectionType = "%I%"
	SectionTypeLab              SectionType = "%B%"
	SectionTypeLecture          SectionType = "%L%"
	SectionTypeRecitation       SectionType = "%C%"
	SectionTypeResearch         SectionType = "%R%"
	SectionTypeOnline           SectionType = "ONLINE"
)

// Status restricts a search to sections with open seats.
type Status string

const (
	StatusAll  Status = ""
	StatusOpen Status = "on"
)

// Modality is the instructional delivery mode. The zero value means
// the timetable listed no modality for the section.
type Modality string

const (
	ModalityAll         Modality = "%"
	ModalityInPerson    Modality = "A"
	ModalityHybrid      Modality = "H"
	ModalityOnlineSync  Modality = "N"
	ModalityOnlineAsync Modality = "O"
)

// Day is a day of the week a section meets on. Arranged marks
// sections without fixed meeting times; it is recognized during
// parsing but never appears in a course schedule.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
	Arranged  Day = "Arranged"
)
