package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelativeTimestamp(t *testing.T) {
	now := time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		createdAt time.Time
		expected  string
	}{
		{"1分未満は剛剛", now.Add(-30 * time.Second), "剛剛"},
		{"10分前", now.Add(-10 * time.Minute), "10 分鐘前"},
		{"59分前", now.Add(-59 * time.Minute), "59 分鐘前"},
		{"2時間前", now.Add(-2 * time.Hour), "2 小時前"},
		{"23時間前", now.Add(-23 * time.Hour), "23 小時前"},
		{"3日前", now.Add(-72 * time.Hour), "3 日前"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRelativeTimestamp(tc.createdAt, now))
		})
	}
}
