package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storyvault/internal/models"
)

func TestCheckInterval(t *testing.T) {
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		gap      time.Duration
		wantOK   bool
		wantWait time.Duration
	}{
		{"immediately after", 0, false, 180 * time.Second},
		{"one second before limit", 179 * time.Second, false, time.Second},
		{"exactly at limit", 180 * time.Second, true, 0},
		{"well past limit", time.Hour, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := &models.Post{CreatedAt: now.Add(-tt.gap)}
			wait, ok := CheckInterval(last, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantWait, wait)
		})
	}
}

func TestCheckIntervalNoPreviousPost(t *testing.T) {
	wait, ok := CheckInterval(nil, time.Now())
	assert.True(t, ok)
	assert.Zero(t, wait)
}

func TestWaitMessage(t *testing.T) {
	assert.Equal(t, "You can submit your next post in 2 min. 5 sec.", WaitMessage(125*time.Second))
	assert.Equal(t, "You can submit your next post in 0 min. 59 sec.", WaitMessage(59*time.Second))
	assert.Equal(t, "You can submit your next post in 3 min. 0 sec.", WaitMessage(180*time.Second))
}
