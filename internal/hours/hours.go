// Package hours extracts time durations from free-text task descriptions.
package hours

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Matches duration tokens like "2 hours", "30min", "1.5h". The unit vocabulary
// is a closed enumeration; the word boundary keeps "3 meals" from matching.
var durationRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)\b`)

// Task pairs a task description with the hours extracted from it.
type Task struct {
	Description string
	Hours       float64
}

// ParseLine sums every duration token found in line as fractional hours.
// Units starting with "m" count as minutes, everything else as hours.
// Lines without any token yield 0.
func ParseLine(line string) float64 {
	total := 0.0
	for _, m := range durationRegex.FindAllStringSubmatch(line, -1) {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(strings.ToLower(m[2]), "m") {
			total += value / 60.0
		} else {
			total += value
		}
	}
	return total
}

// LoadTasks reads task descriptions line by line, skipping blank lines.
func LoadTasks(r io.Reader) []Task {
	var tasks []Task
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tasks = append(tasks, Task{Description: line, Hours: ParseLine(line)})
	}
	return tasks
}

// ReadTasksFile loads tasks from path. A missing file is treated as an empty
// task list.
func ReadTasksFile(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return LoadTasks(f), nil
}
