package hours

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
)

var isoDateRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ParseDailyHours builds a per-day hours table from dated task lines.
// A line contributes only when it contains an ISO date (YYYY-MM-DD) that
// parses as a real calendar date and its extracted hours are positive.
// Multiple lines for the same date accumulate.
func ParseDailyHours(r io.Reader) map[time.Time]float64 {
	perDay := make(map[time.Time]float64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := isoDateRegex.FindString(line)
		if m == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", m)
		if err != nil {
			continue
		}
		h := ParseLine(line)
		if h <= 0 {
			continue
		}
		perDay[day] += h
	}
	return perDay
}

// ReadDailyHoursFile loads a per-day table from path. A missing file yields
// an empty table.
func ReadDailyHoursFile(path string) (map[time.Time]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[time.Time]float64{}, nil
		}
		return nil, err
	}
	defer f.Close()

	return ParseDailyHours(f), nil
}
