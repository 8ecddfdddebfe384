package evetime

import "time"

// Layout is the timestamp format used by every feed of the XML API,
// for example "2014-01-01 00:00:00".
const Layout = "2006-01-02 15:04:05"

var Location = time.UTC

// Parse converts an API timestamp into a time.Time in UTC.
func Parse(value string) (time.Time, error) {
	return time.ParseInLocation(Layout, value, Location)
}

// Format renders t the way the API does.
func Format(t time.Time) string {
	return t.In(Location).Format(Layout)
}

// force times into UTC ("EVE time") because the API reports
// currentTime/cachedUntil in UTC and comparing against a server's
// local clock will skew freshness decisions
func Now() time.Time {
	return time.Now().In(Location)
}

// Expired reports whether a cachedUntil value from a feed has passed.
// Unparseable values count as expired.
func Expired(cachedUntil string) bool {
	t, err := Parse(cachedUntil)
	if err != nil {
		return true
	}
	return Now().After(t)
}
