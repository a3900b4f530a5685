package types

import (
	"strconv"
	"time"
)

// Time is a time.Time that marshals to and from integer milliseconds,
// the timestamp format the exchange feeds deliver candles in.
type Time time.Time

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) String() string {
	return time.Time(t).String()
}

func (t Time) After(t2 time.Time) bool {
	return time.Time(t).After(t2)
}

func (t Time) Before(t2 time.Time) bool {
	return time.Time(t).Before(t2)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, time.Time(t).UnixMilli(), 10), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// fallback to RFC3339
		return (*time.Time)(t).UnmarshalJSON(data)
	}

	*t = NewTimeFromMillis(v)
	return nil
}

func NewTimeFromMillis(millis int64) Time {
	return Time(time.UnixMilli(millis))
}
