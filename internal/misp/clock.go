package misp

import "time"

// tehran is the zone all derived date and timestamp values are rendered in,
// matching what the MISP operators expect regardless of host timezone.
var tehran = loadTehran()

func loadTehran() *time.Location {
	loc, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		// Hosts without tzdata fall back to the fixed +03:30 offset.
		return time.FixedZone("Asia/Tehran", 3*3600+30*60)
	}
	return loc
}

// nowEpoch returns the current time as epoch seconds. Computed per call,
// never cached on a long-lived service instance.
func nowEpoch() int64 {
	return time.Now().In(tehran).Unix()
}

// today returns the current Tehran-local date as YYYY-MM-DD.
func today() string {
	return time.Now().In(tehran).Format("2006-01-02")
}

// dateToEpoch converts a YYYY-MM-DD string to epoch seconds at midnight UTC.
func dateToEpoch(date string) (int64, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// epochToDate formats epoch seconds as a zero-padded YYYY-MM-DD in UTC.
func epochToDate(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02")
}
