package utils

import "time"

//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks

// TimestampLayout é o formato ISO-8601 usado nos campos de data das respostas.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
