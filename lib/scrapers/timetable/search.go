package timetable

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// Term identifies an academic period: a calendar year plus a semester.
type Term struct {
	Year     string
	Semester Semester
}

// Key returns the TERMYEAR value the timetable expects. Winter terms
// are keyed to the prior calendar year, so winter 2025 encodes as
// "202412".
func (t Term) Key() (string, error) {
	year := t.Year
	if t.Semester == SemesterWinter {
		n, err := strconv.Atoi(t.Year)
		if err != nil {
			return "", ParseError{Field: "term year", Value: t.Year}
		}
		year = strconv.Itoa(n - 1)
	}
	return year + string(t.Semester), nil
}

// SearchOptions narrows a search. The zero value of every field means
// "match all"; Subject, Code and CRN pass through as typed.
type SearchOptions struct {
	Campus      Campus
	Pathway     Pathway
	Subject     string
	SectionType SectionType
	Code        string
	CRN         string
	Status      Status
	Modality    Modality
}

func (o SearchOptions) formData(termYear string) map[string]string {
	campus := o.Campus
	if campus == "" {
		campus = CampusBlacksburg
	}
	pathway := o.Pathway
	if pathway == "" {
		pathway = PathwayAll
	}
	subject := o.Subject
	if subject == "" {
		subject = "%"
	}
	sectionType := o.SectionType
	if sectionType == "" {
		sectionType = SectionTypeAll
	}
	modality := o.Modality
	if modality == "" {
		modality = ModalityAll
	}

	return map[string]string{
		"CAMPUS":      string(campus),
		"TERMYEAR":    termYear,
		"CORE_CODE":   string(pathway),
		"subj_code":   subject,
		"SCHDTYPE":    string(sectionType),
		"CRSE_NUMBER": o.Code,
		"crn":         o.CRN,
		"open_only":   string(o.Status),
		"sess_code":   string(modality),
	}
}

// Search runs one timetable search and returns the matching courses in
// page order. Zero matches come back as an empty slice, not an error.
// A single malformed row fails the whole search so a successful return
// is always complete.
func (c *Client) Search(ctx context.Context, term Term, opts SearchOptions) ([]Course, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	termYear, err := term.Key()
	if err != nil {
		return nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(opts.formData(termYear)).
		Post(c.baseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search request failed")
		return nil, err
	}

	empty, err := classifySearch(res.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "timetable rejected the search")
		return nil, err
	}
	if empty {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse response html")
		return nil, err
	}
	rows, err := courseTableRows(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected page structure")
		return nil, err
	}

	var courses []Course
	// row 0 is the header. a non-empty first cell marks a primary
	// course row; the row after it is its continuation candidate.
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || row[0] == "" {
			continue
		}
		var next []string
		if i+1 < len(rows) {
			next = rows[i+1]
		}
		course, err := buildCourse(term.Year, term.Semester, row, next)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "malformed course row")
			return nil, err
		}
		courses = append(courses, course)
	}

	slog.DebugContext(ctx, "search finished", "termyear", termYear, "courses", len(courses))
	return courses, nil
}

// GetCRN looks up the single section with the given CRN. The second
// return value reports whether it was found; a miss is a valid
// outcome, not an error.
func (c *Client) GetCRN(ctx context.Context, term Term, crn string) (Course, bool, error) {
	ctx, span := tracer.Start(ctx, "GetCRN")
	defer span.End()

	courses, err := c.Search(ctx, term, SearchOptions{CRN: crn})
	if err != nil {
		return Course{}, false, err
	}
	if len(courses) == 0 {
		return Course{}, false, nil
	}
	return courses[0], true, nil
}

// HasOpenSeats re-runs the CRN search restricted to sections with open
// seats. The answer is recomputed on every call, never cached.
func (c *Client) HasOpenSeats(ctx context.Context, term Term, crn string) (bool, error) {
	ctx, span := tracer.Start(ctx, "HasOpenSeats")
	defer span.End()

	courses, err := c.Search(ctx, term, SearchOptions{CRN: crn, Status: StatusOpen})
	if err != nil {
		return false, err
	}
	return len(courses) > 0, nil
}
