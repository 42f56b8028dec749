package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapseSpace(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "  L 01 ", expected: "L 01"},
		{in: "M  W\nF", expected: "M W F"},
		{in: " ", expected: ""},
		{in: "already clean", expected: "already clean"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CollapseSpace(test.in))
	}
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "onlineasync", NormalizeName(" Online Async\n"))
}
