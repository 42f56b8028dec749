package timetable

import (
	"context"
	"regexp"

	"go.opentelemetry.io/otel/codes"
)

// TermOption is one selectable (semester, year) pair from the search
// form.
type TermOption struct {
	Semester Semester
	Year     string
}

// Subject is one selectable subject from the search form.
type Subject struct {
	Abbreviation string
	Name         string
}

var (
	termOptionRegex    = regexp.MustCompile(`<OPTION VALUE="\d{6}">([A-Z][a-z]+) (\d+)</OPTION>`)
	subjectOptionRegex = regexp.MustCompile(`\("([A-Z]+) - (.+?)"`)
)

var semestersByName = map[string]Semester{
	"Spring": SemesterSpring,
	"Summer": SemesterSummer,
	"Fall":   SemesterFall,
	"Winter": SemesterWinter,
}

// Semesters fetches the set of terms the timetable currently offers
// for searching. Order is not meaningful.
func (c *Client) Semesters(ctx context.Context) (map[TermOption]struct{}, error) {
	ctx, span := tracer.Start(ctx, "Semesters")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.baseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "metadata request failed")
		return nil, err
	}

	options := map[TermOption]struct{}{}
	for _, groups := range termOptionRegex.FindAllStringSubmatch(res.String(), -1) {
		semester, ok := semestersByName[groups[1]]
		if !ok {
			return nil, ParseError{Field: "semester name", Value: groups[1]}
		}
		options[TermOption{Semester: semester, Year: groups[2]}] = struct{}{}
	}
	return options, nil
}

// Subjects fetches the set of subjects the timetable knows, as
// (abbreviation, full name) pairs. Order is not meaningful.
func (c *Client) Subjects(ctx context.Context) (map[Subject]struct{}, error) {
	ctx, span := tracer.Start(ctx, "Subjects")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.baseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "metadata request failed")
		return nil, err
	}

	subjects := map[Subject]struct{}{}
	for _, groups := range subjectOptionRegex.FindAllStringSubmatch(res.String(), -1) {
		subjects[Subject{Abbreviation: groups[1], Name: groups[2]}] = struct{}{}
	}
	return subjects, nil
}
