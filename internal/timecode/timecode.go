package timecode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrFormat marks a timestamp that does not match the expected pattern.
var ErrFormat = errors.New("malformed timestamp")

var srtTimestampPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// ParseSRT parses a strict SRT timestamp (HH:MM:SS,mmm) into seconds.
// Two-digit hour/minute/second and three-digit millisecond fields are
// required; anything else fails with ErrFormat.
func ParseSRT(value string) (float64, error) {
	match := srtTimestampPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, value)
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	millis, _ := strconv.Atoi(match[4])
	return float64(hours*secondsPerHour+minutes*secondsPerMinute+seconds) + float64(millis)/1000, nil
}

// FormatSRT renders seconds as an SRT timestamp (HH:MM:SS,mmm). Hour,
// minute, and second components truncate; milliseconds round to the
// nearest integer and cap at 999 so rounding never carries into seconds.
func FormatSRT(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := math.Floor(seconds)
	hours := int(whole) / secondsPerHour
	minutes := (int(whole) % secondsPerHour) / secondsPerMinute
	secs := int(whole) % secondsPerMinute
	millis := int(math.Round((seconds - whole) * 1000))
	if millis > 999 {
		millis = 999
	}
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// FormatASS renders seconds as an ASS timestamp (H:MM:SS.CC) with the hour
// unpadded. Centiseconds round to the nearest integer and cap at 99:
// naive rounding of a fraction like 0.995 would otherwise overflow to 100
// and corrupt the field width.
func FormatASS(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := math.Floor(seconds)
	hours := int(whole) / secondsPerHour
	minutes := (int(whole) % secondsPerHour) / secondsPerMinute
	secs := int(whole) % secondsPerMinute
	centis := int(math.Round((seconds - whole) * 100))
	if centis > 99 {
		centis = 99
	}
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}
