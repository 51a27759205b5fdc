package dashboard

import (
	"fmt"
	"time"
)

// TimeAgo renders the relative age of an activity. Thresholds and the
// always-plural wording are a compatibility contract with existing
// clients: exactly 60 seconds is "1 minutes ago", not "1 minute ago".
func TimeAgo(createdAt, now time.Time) string {
	seconds := int64(now.Sub(createdAt) / time.Second)

	if seconds < 60 {
		return "Just now"
	}
	if seconds < 3600 {
		return fmt.Sprintf("%d minutes ago", seconds/60)
	}
	if seconds < 86400 {
		return fmt.Sprintf("%d hours ago", seconds/3600)
	}
	return fmt.Sprintf("%d days ago", seconds/86400)
}
