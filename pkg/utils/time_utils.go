// utils/timeutil.go
package utils

import "time"

// Korea time location (KST, +09:00)
var krLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

// Use explicit "seconds" variant for DB storage (recommended)
func NowUnixSeconds() int64 { return time.Now().Unix() }

// ElapsedMinutes converts a [startUnix, nowUnix] window into whole
// elapsed minutes, flooring. Negative windows clamp to 0 so clock skew
// can never produce a negative elapsed time.
func ElapsedMinutes(startUnix, nowUnix int64) int64 {
	if nowUnix <= startUnix {
		return 0
	}
	return (nowUnix - startUnix) / 60
}

// Convert an epoch value in **seconds** to KST.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsKR(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(krLoc)
}

// Format helpers
func FormatRFC3339KR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(krLoc).Format(time.RFC3339)
}
