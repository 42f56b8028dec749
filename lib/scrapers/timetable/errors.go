package timetable

import "fmt"

// RequestError indicates the timetable rejected the search parameters
// as structurally invalid.
type RequestError struct {
	Message string
}

func (e RequestError) Error() string {
	return e.Message
}

// SearchError indicates the timetable reported a problem with an
// otherwise well-formed search. Message is the text the page
// displayed, passed through verbatim.
type SearchError struct {
	Message string
}

func (e SearchError) Error() string {
	return e.Message
}

// StructureError indicates the response page no longer has the layout
// this scraper was written against.
type StructureError struct {
	Message string
}

func (e StructureError) Error() string {
	return e.Message
}

// ParseError indicates a course row field did not match its expected
// format.
type ParseError struct {
	Field string
	Value string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("could not parse %s from %q", e.Field, e.Value)
}
