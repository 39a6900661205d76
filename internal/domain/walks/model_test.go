package walks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 hr 0 min"},
		{59 * time.Second, "0 hr 0 min"},
		{45 * time.Minute, "0 hr 45 min"},
		{time.Hour + 35*time.Minute + 20*time.Second, "1 hr 35 min"},
		{26 * time.Hour, "26 hr 0 min"},
		{-time.Minute, "0 hr 0 min"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.d), tc.d.String())
	}
}

func TestTotal(t *testing.T) {
	items := []Walk{
		{Duration: 30 * time.Minute},
		{Duration: 45 * time.Minute},
		{Duration: 1200 * time.Second},
	}
	assert.Equal(t, 95*time.Minute, Total(items))
	assert.Equal(t, time.Duration(0), Total(nil))
}
