package timetable

import (
	"regexp"
	"strings"
)

const (
	requestErrorMarker = "THERE IS AN ERROR WITH YOUR REQUEST"
	problemMarker      = "There was a problem with your request"
	noSectionsMarker   = "NO SECTIONS FOUND FOR THIS INQUIRY"
)

var problemMessageRegex = regexp.MustCompile(`<b class=red_msg><li>(.+)</b>`)

// classifySearch inspects a raw search response. It reports empty=true
// for the no-sections outcome, a RequestError or SearchError for the
// two failure outcomes, and (false, nil) when the body should hold a
// course table. The no-sections marker only ever appears inside a
// generic problem report, so the problem marker must be checked after
// the request-error marker and subdivided, in that order.
func classifySearch(body string) (empty bool, err error) {
	if strings.Contains(body, requestErrorMarker) {
		return false, RequestError{Message: "the search parameters provided were invalid"}
	}
	if strings.Contains(body, problemMarker) {
		if strings.Contains(body, noSectionsMarker) {
			return true, nil
		}
		groups := problemMessageRegex.FindStringSubmatch(body)
		if groups == nil {
			return false, StructureError{Message: "problem report is missing its message"}
		}
		return false, SearchError{Message: groups[1]}
	}
	return false, nil
}
