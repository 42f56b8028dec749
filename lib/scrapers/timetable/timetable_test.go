package timetable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"vttimetable/lib/telemetry"

	"github.com/stretchr/testify/require"
)

type fakeTimetable struct {
	response []byte
	lastForm url.Values
}

func (f *fakeTimetable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		err := r.ParseForm()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.lastForm = r.PostForm
	}
	w.Write(f.response)
}

func newTestClient(t *testing.T, response []byte) (*Client, *fakeTimetable) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/timetable")
	t.Cleanup(cleanup)

	fake := &fakeTimetable{response: response}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)
	return client, fake
}

func TestSearch(t *testing.T) {
	client, fake := newTestClient(t, timetablePageTest)

	courses, err := client.Search(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		SearchOptions{Subject: "CS"},
	)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	require.Equal(t, "202509", fake.lastForm.Get("TERMYEAR"))
	require.Equal(t, "CS", fake.lastForm.Get("subj_code"))
	// unset filters must encode as their match-all values
	require.Equal(t, "0", fake.lastForm.Get("CAMPUS"))
	require.Equal(t, "AR%", fake.lastForm.Get("CORE_CODE"))
	require.Equal(t, "%", fake.lastForm.Get("SCHDTYPE"))
	require.Equal(t, "%", fake.lastForm.Get("sess_code"))
	require.Equal(t, "", fake.lastForm.Get("open_only"))

	first := courses[0]
	require.Equal(t, "12345", first.CRN)
	require.Equal(t, "CS", first.Subject)
	require.Equal(t, "1114", first.Code)
	require.Equal(t, "Intro to Software Design", first.Name)
	require.Equal(t, SectionTypeLecture, first.SectionType)
	require.Equal(t, ModalityInPerson, first.Modality)

	classroom := Meeting{Start: "9:00", End: "9:50", Location: "McB100"}
	extra := Meeting{Start: "9:00", End: "9:50", Location: "TORG1060"}
	require.Equal(t, Schedule{
		Monday:    {classroom: {}},
		Wednesday: {classroom: {}},
		Friday:    {extra: {}},
	}, first.Schedule)

	second := courses[1]
	require.Equal(t, "54321", second.CRN)
	require.Equal(t, SectionTypeOnline, second.SectionType)
	require.Equal(t, ModalityOnlineAsync, second.Modality)
	require.Empty(t, second.Schedule)
}

func TestSearchDefaultSubjectWildcard(t *testing.T) {
	client, fake := newTestClient(t, timetablePageTest)

	_, err := client.Search(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		SearchOptions{},
	)
	require.NoError(t, err)
	require.Equal(t, "%", fake.lastForm.Get("subj_code"))
}

func TestSearchWinterTermYear(t *testing.T) {
	client, fake := newTestClient(t, timetablePageTest)

	_, err := client.Search(
		context.Background(),
		Term{Year: "2025", Semester: SemesterWinter},
		SearchOptions{},
	)
	require.NoError(t, err)
	require.Equal(t, "202412", fake.lastForm.Get("TERMYEAR"))
}

func TestSearchEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, []byte(
		"There was a problem with your request\n"+
			"<b class=red_msg><li>NO SECTIONS FOUND FOR THIS INQUIRY</b>",
	))

	courses, err := client.Search(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		SearchOptions{},
	)
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestSearchRequestError(t *testing.T) {
	client, _ := newTestClient(t, []byte("THERE IS AN ERROR WITH YOUR REQUEST"))

	_, err := client.Search(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		SearchOptions{},
	)
	var reqErr RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestSearchServerMessage(t *testing.T) {
	client, _ := newTestClient(t, []byte(
		"There was a problem with your request\n"+
			"<b class=red_msg><li>Invalid CRN format</b>",
	))

	_, err := client.Search(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		SearchOptions{CRN: "bogus"},
	)
	var searchErr SearchError
	require.ErrorAs(t, err, &searchErr)
	require.Equal(t, "Invalid CRN format", searchErr.Message)
}

func TestGetCRN(t *testing.T) {
	client, fake := newTestClient(t, timetablePageTest)

	course, found, err := client.GetCRN(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		"12345",
	)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "12345", course.CRN)
	require.Equal(t, "12345", fake.lastForm.Get("crn"))
}

func TestGetCRNNotFound(t *testing.T) {
	client, _ := newTestClient(t, []byte(
		"There was a problem with your request\n"+
			"<b class=red_msg><li>NO SECTIONS FOUND FOR THIS INQUIRY</b>",
	))

	_, found, err := client.GetCRN(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		"99999",
	)
	require.NoError(t, err)
	require.False(t, found)
}

func TestHasOpenSeats(t *testing.T) {
	client, fake := newTestClient(t, timetablePageTest)

	open, err := client.HasOpenSeats(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		"12345",
	)
	require.NoError(t, err)
	require.True(t, open)
	require.Equal(t, "on", fake.lastForm.Get("open_only"))
	require.Equal(t, "12345", fake.lastForm.Get("crn"))
}

func TestHasOpenSeatsFull(t *testing.T) {
	client, _ := newTestClient(t, []byte(
		"There was a problem with your request\n"+
			"<b class=red_msg><li>NO SECTIONS FOUND FOR THIS INQUIRY</b>",
	))

	open, err := client.HasOpenSeats(
		context.Background(),
		Term{Year: "2025", Semester: SemesterFall},
		"12345",
	)
	require.NoError(t, err)
	require.False(t, open)
}

func TestTermKey(t *testing.T) {
	cases := []struct {
		term     Term
		expected string
	}{
		{term: Term{Year: "2025", Semester: SemesterSpring}, expected: "202501"},
		{term: Term{Year: "2025", Semester: SemesterSummer}, expected: "202506"},
		{term: Term{Year: "2025", Semester: SemesterFall}, expected: "202509"},
		{term: Term{Year: "2025", Semester: SemesterWinter}, expected: "202412"},
	}

	for _, test := range cases {
		key, err := test.term.Key()
		require.NoError(t, err)
		require.Equal(t, test.expected, key)
	}
}

func TestTermKeyBadWinterYear(t *testing.T) {
	_, err := Term{Year: "next year", Semester: SemesterWinter}.Key()
	require.Error(t, err)
}
