package board

import (
	"fmt"
	"time"

	"storyvault/internal/models"
)

// PostInterval is the minimum spacing between posts from one source IP.
const PostInterval = 180 * time.Second

// CheckInterval applies the per-IP cooldown against the most recent
// non-deleted post for that IP (nil when there is none). It returns
// ok=true when posting is allowed, otherwise the remaining wait.
// Only the single most recent post matters; this is not a sliding window.
func CheckInterval(last *models.Post, now time.Time) (wait time.Duration, ok bool) {
	if last == nil {
		return 0, true
	}
	age := now.Sub(last.CreatedAt)
	if age >= PostInterval {
		return 0, true
	}
	return PostInterval - age, false
}

// WaitMessage formats the remaining cooldown as minutes and seconds.
func WaitMessage(wait time.Duration) string {
	secs := int(wait.Seconds())
	return fmt.Sprintf(MsgRateLimit, secs/60, secs%60)
}
