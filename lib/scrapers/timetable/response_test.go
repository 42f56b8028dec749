package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySearch(t *testing.T) {
	t.Run("course table", func(t *testing.T) {
		empty, err := classifySearch("<html><table></table></html>")
		require.NoError(t, err)
		require.False(t, empty)
	})

	t.Run("request error wins over everything", func(t *testing.T) {
		body := "THERE IS AN ERROR WITH YOUR REQUEST\n" +
			"There was a problem with your request\n" +
			"NO SECTIONS FOUND FOR THIS INQUIRY"
		_, err := classifySearch(body)
		var reqErr RequestError
		require.ErrorAs(t, err, &reqErr)
	})

	t.Run("no sections is empty, not an error", func(t *testing.T) {
		body := "There was a problem with your request\n" +
			"<b class=red_msg><li>NO SECTIONS FOUND FOR THIS INQUIRY</b>"
		empty, err := classifySearch(body)
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("problem message is passed through verbatim", func(t *testing.T) {
		body := "There was a problem with your request\n" +
			"<b class=red_msg><li>CRN 99999 NOT FOUND FOR THIS TERM</b>"
		_, err := classifySearch(body)
		var searchErr SearchError
		require.ErrorAs(t, err, &searchErr)
		require.Equal(t, "CRN 99999 NOT FOUND FOR THIS TERM", searchErr.Message)
	})

	t.Run("problem report without a message is malformed", func(t *testing.T) {
		_, err := classifySearch("There was a problem with your request")
		var structErr StructureError
		require.ErrorAs(t, err, &structErr)
	})
}
