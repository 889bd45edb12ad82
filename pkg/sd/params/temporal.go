package params

import "time"

// Today is the ambient date source used when a temporal bound is omitted.
// Injectable so that builders stay deterministic under test.
type Today func() time.Time

// setDates contributes an ActivationDate/DeactivationDate pair. Either
// bound defaults to today when left at its zero value. No start<=end
// validation takes place: inverted windows are passed through unchanged
// and the remote service decides what they mean.
func setDates(f *Fields, start, end time.Time, today Today) {
	if start.IsZero() {
		start = today()
	}
	if end.IsZero() {
		end = today()
	}

	f.SetDate("ActivationDate", start)
	f.SetDate("DeactivationDate", end)
}

// setDateTimes contributes date+time pairs for both bounds. A missing start
// defaults to today at midnight, a missing end to today at 23:59:59.
// Like setDates it performs no window validation.
func setDateTimes(f *Fields, start, end time.Time, today Today) {
	if start.IsZero() {
		start = startOfDay(today())
	}
	if end.IsZero() {
		end = endOfDay(today())
	}

	f.SetDate("ActivationDate", start)
	f.SetTime("ActivationTime", start)
	f.SetDate("DeactivationDate", end)
	f.SetTime("DeactivationTime", end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
