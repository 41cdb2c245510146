package classroom

import "time"

// Default time-of-day for deadlines that come without one.
const (
	defaultDueHour   = 23
	defaultDueMinute = 59
)

// ResolveDueDate extracts a canonical deadline from a submission record.
//
// Resolution order: a complete (year, month, day) triple from `dueDate`,
// else from `assignmentSubmission.dueDate`, combined with the matching
// time-of-day (23:59 when absent); else the record's updateTime, else its
// creationTime, else `now`. A partial triple is treated the same as no
// triple at all and continues down the fallback chain; out-of-range
// components normalize into a valid date. Malformed timestamps degrade to
// the next fallback, never to an error.
func ResolveDueDate(sub Submission, now time.Time) time.Time {
	dd := sub.DueDate
	dt := sub.DueTime
	if nested := sub.AssignmentSubmission; nested != nil {
		if dd == nil {
			dd = nested.DueDate
		}
		if dt == nil {
			dt = nested.DueTime
		}
	}

	if dd.Complete() {
		hour, minute := defaultDueHour, defaultDueMinute
		if dt != nil {
			if dt.Hours != nil {
				hour = *dt.Hours
			}
			if dt.Minutes != nil {
				minute = *dt.Minutes
			}
		}
		return time.Date(dd.Year, time.Month(dd.Month), dd.Day, hour, minute, 0, 0, time.Local)
	}

	if t, err := time.Parse(time.RFC3339, sub.UpdateTime); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, sub.CreationTime); err == nil {
		return t
	}
	return now
}

// DaysLeft returns ceil((due - now) / 24h). The result may be negative for
// overdue work; clamping to zero is a display concern, not done here.
func DaysLeft(due, now time.Time) int {
	diff := due.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
