package utils

import "time"

// Brazil time location (BRT, -03:00)
var brLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*3600)
}()

// FormatRFC3339BR renders a timestamp in the store's local timezone for
// dashboard display. Zero times render as an empty string.
func FormatRFC3339BR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(brLoc).Format(time.RFC3339)
}
