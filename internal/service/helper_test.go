package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeWords(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "< 1m"},
		{59, "< 1m"},
		{60, "1m"},
		{3599, "59m"},
		{3600, "1h"},
		{7200, "2h"},
		{86400, "1d"},
		{604800, "7d"},
		{2 * 365 * 86400, "2y"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ageWords(tc.seconds), "seconds=%d", tc.seconds)
	}
}
