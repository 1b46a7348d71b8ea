package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"yomna.employee@mail.com", "Yomna"},
		{"ahmed.hr@mail.com", "Ahmed"},
		{"manager@mail.com", "Manager"},
		{"admin@mail.com", "Admin"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DisplayName(tc.email), "email %q", tc.email)
	}
}

func TestGreeting(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Greeting(day.Add(time.Duration(tc.hour)*time.Hour)), "hour %d", tc.hour)
	}
}

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", FriendlyRelativeTime(now))
	assert.Equal(t, "just now", FriendlyRelativeTime(now.Add(time.Minute)))
	assert.Equal(t, "5 minutes ago", FriendlyRelativeTime(now.Add(-5*time.Minute)))
	assert.Equal(t, "1 hour ago", FriendlyRelativeTime(now.Add(-90*time.Minute)))
	assert.Equal(t, "2 days ago", FriendlyRelativeTime(now.Add(-49*time.Hour)))

	old := now.Add(-30 * 24 * time.Hour)
	assert.Equal(t, FormatFriendlyDateTime(old), FriendlyRelativeTime(old))
}

func TestFormatFriendlyDateTime_Zero(t *testing.T) {
	assert.Empty(t, FormatFriendlyDateTime(time.Time{}))
}
