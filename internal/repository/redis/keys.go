package redis

import "fmt"

const ns = "cinebook:v1"

func KeyIdemBooking(showtimeID int64, idemKey string) string {
	return fmt.Sprintf("%s:idem:bookings:%d:%s", ns, showtimeID, idemKey)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelShowtimesChanged() string {
	return ns + ":showtimes:changed"
}
