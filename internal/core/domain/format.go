package domain

import "time"

// LastModifiedLayout renders timestamps as e.g. "Mar 4, 2025, 09:15 AM".
const LastModifiedLayout = "Jan 2, 2006, 03:04 PM"

// FormatLastModified renders a CV timestamp for display in local time.
// Zero timestamps render as "never".
func FormatLastModified(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(LastModifiedLayout)
}
