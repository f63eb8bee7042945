package kval

import (
	"fmt"
	"time"
)

// Epoch is the host's zero point for every temporal type.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	nsPerDay = int64(24 * time.Hour)
	msPerDay = 86_400_000
)

// TimestampAt converts t to a Timestamp atom (nanoseconds since Epoch).
func TimestampAt(t time.Time) Atom {
	return Timestamp(t.UTC().Sub(Epoch).Nanoseconds())
}

// DateAt converts the calendar day of t to a Date atom.
func DateAt(t time.Time) Atom {
	y, m, d := t.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Date(int32(day.Sub(Epoch) / (24 * time.Hour)))
}

// MonthAt converts the calendar month of t to a Month atom.
func MonthAt(t time.Time) Atom {
	y, m, _ := t.UTC().Date()
	return Month(int32((y-2000)*12 + int(m) - 1))
}

func formatTimestamp(ns int64) string {
	return Epoch.Add(time.Duration(ns)).Format("2006.01.02D15:04:05.000000000")
}

func formatMonth(m int32) string {
	y := 2000 + floorDiv(int64(m), 12)
	mo := int64(m) - floorDiv(int64(m), 12)*12 + 1
	return fmt.Sprintf("%04d.%02dm", y, mo)
}

func formatDate(d int32) string {
	return Epoch.AddDate(0, 0, int(d)).Format("2006.01.02")
}

func formatDatetime(days float64) string {
	ms := int64(days*msPerDay + 0.5)
	if days < 0 {
		ms = int64(days*msPerDay - 0.5)
	}
	return Epoch.Add(time.Duration(ms) * time.Millisecond).Format("2006.01.02T15:04:05.000")
}

func formatTimespan(ns int64) string {
	sign := ""
	if ns < 0 {
		sign, ns = "-", -ns
	}
	days := ns / nsPerDay
	rest := ns % nsPerDay
	h := rest / int64(time.Hour)
	rest %= int64(time.Hour)
	m := rest / int64(time.Minute)
	rest %= int64(time.Minute)
	s := rest / int64(time.Second)
	return fmt.Sprintf("%s%dD%02d:%02d:%02d.%09d", sign, days, h, m, s, rest%int64(time.Second))
}

func formatMinute(v int32) string {
	sign, n := splitSign(int64(v))
	return fmt.Sprintf("%s%02d:%02d", sign, n/60, n%60)
}

func formatSecond(v int32) string {
	sign, n := splitSign(int64(v))
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, n/3600, n/60%60, n%60)
}

func formatTime(v int32) string {
	sign, n := splitSign(int64(v))
	sec := n / 1000
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, sec/3600, sec/60%60, sec%60, n%1000)
}

func splitSign(n int64) (string, int64) {
	if n < 0 {
		return "-", -n
	}
	return "", n
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
