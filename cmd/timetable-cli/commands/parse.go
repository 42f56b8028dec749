package commands

import (
	"fmt"
	"vttimetable/lib/scrapers/timetable"
	"vttimetable/lib/textutil"
)

var semestersByName = map[string]timetable.Semester{
	"spring": timetable.SemesterSpring,
	"summer": timetable.SemesterSummer,
	"fall":   timetable.SemesterFall,
	"winter": timetable.SemesterWinter,
}

var campusesByName = map[string]timetable.Campus{
	"":           timetable.CampusBlacksburg,
	"blacksburg": timetable.CampusBlacksburg,
	"virtual":    timetable.CampusVirtual,
}

var sectionTypesByName = map[string]timetable.SectionType{
	"":                  timetable.SectionTypeAll,
	"all":               timetable.SectionTypeAll,
	"independentstudy":  timetable.SectionTypeIndependentStudy,
	"independent-study": timetable.SectionTypeIndependentStudy,
	"lab":               timetable.SectionTypeLab,
	"lecture":           timetable.SectionTypeLecture,
	"recitation":        timetable.SectionTypeRecitation,
	"research":          timetable.SectionTypeResearch,
	"online":            timetable.SectionTypeOnline,
}

var modalitiesByName = map[string]timetable.Modality{
	"":             timetable.ModalityAll,
	"all":          timetable.ModalityAll,
	"inperson":     timetable.ModalityInPerson,
	"in-person":    timetable.ModalityInPerson,
	"hybrid":       timetable.ModalityHybrid,
	"onlinesync":   timetable.ModalityOnlineSync,
	"online-sync":  timetable.ModalityOnlineSync,
	"onlineasync":  timetable.ModalityOnlineAsync,
	"online-async": timetable.ModalityOnlineAsync,
}

var pathwaysByName = map[string]timetable.Pathway{
	"":     timetable.PathwayAll,
	"all":  timetable.PathwayAll,
	"cle1": timetable.CLE1,
	"cle2": timetable.CLE2,
	"cle3": timetable.CLE3,
	"cle4": timetable.CLE4,
	"cle5": timetable.CLE5,
	"cle6": timetable.CLE6,
	"cle7": timetable.CLE7,
	"1a":   timetable.Pathway1A,
	"1f":   timetable.Pathway1F,
	"2":    timetable.Pathway2,
	"3":    timetable.Pathway3,
	"4":    timetable.Pathway4,
	"5a":   timetable.Pathway5A,
	"5f":   timetable.Pathway5F,
	"6a":   timetable.Pathway6A,
	"6d":   timetable.Pathway6D,
	"7":    timetable.Pathway7,
}

func parseSemester(name string) (timetable.Semester, error) {
	semester, ok := semestersByName[textutil.NormalizeName(name)]
	if !ok {
		return "", fmt.Errorf("unknown semester %q", name)
	}
	return semester, nil
}

func parseCampus(name string) (timetable.Campus, error) {
	campus, ok := campusesByName[textutil.NormalizeName(name)]
	if !ok {
		return "", fmt.Errorf("unknown campus %q", name)
	}
	return campus, nil
}

func parseSectionType(name string) (timetable.SectionType, error) {
	sectionType, ok := sectionTypesByName[textutil.NormalizeName(name)]
	if !ok {
		return "", fmt.Errorf("unknown section type %q", name)
	}
	return sectionType, nil
}

func parseModality(name string) (timetable.Modality, error) {
	modality, ok := modalitiesByName[textutil.NormalizeName(name)]
	if !ok {
		return "", fmt.Errorf("unknown modality %q", name)
	}
	return modality, nil
}

func parsePathway(name string) (timetable.Pathway, error) {
	pathway, ok := pathwaysByName[textutil.NormalizeName(name)]
	if !ok {
		return "", fmt.Errorf("unknown pathway %q", name)
	}
	return pathway, nil
}
