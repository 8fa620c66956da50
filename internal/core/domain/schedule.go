package domain

import "time"

// DateLayout formats calendar dates used as batch dates and lock keys.
const DateLayout = "2006-01-02"

// DayStart truncates t to midnight in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// BatchSlot returns when the n-th (1-based) batch of a campaign runs for
// the pass on day. Batches are spaced by the campaign delay inside the
// allowed window; a slot past the window end rolls over to the next day's
// window rather than wrapping onto an earlier slot.
func BatchSlot(day time.Time, n int, s BatchSettings) (time.Time, error) {
	start, end, err := s.Window()
	if err != nil {
		return time.Time{}, err
	}
	idx := max(n-1, 0)
	delay := s.Delay()
	if delay <= 0 {
		return atOffset(day, 0, start), nil
	}
	perDay := int((end - start + delay - 1) / delay)
	offset := start + time.Duration(idx%perDay)*delay
	return atOffset(day, idx/perDay, offset), nil
}

// atOffset reads offset as a wall-clock time of day, so slots keep their
// hour on days when the zone's UTC offset changes.
func atOffset(day time.Time, days int, offset time.Duration) time.Time {
	hour := int(offset / time.Hour)
	minute := int(offset % time.Hour / time.Minute)
	sec := int(offset % time.Minute / time.Second)
	return time.Date(day.Year(), day.Month(), day.Day()+days, hour, minute, sec, int(offset%time.Second), day.Location())
}
