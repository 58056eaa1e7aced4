package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Entry is one parsed zerolog record.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Error     string
	Fields    map[string]string
	Raw       string
}

// reserved keys are rendered as dedicated Entry fields.
var reserved = map[string]struct{}{
	"time": {}, "level": {}, "component": {}, "message": {}, "error": {},
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadEntries reads the last maxLines records and parses them. Lines that are
// not JSON objects are kept as plain messages.
func ReadEntries(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse decodes a single zerolog JSON line.
func Parse(line string) Entry {
	if !gjson.Valid(line) {
		return Entry{Message: line, Raw: line}
	}
	rec := gjson.Parse(line)
	if !rec.IsObject() {
		return Entry{Message: line, Raw: line}
	}

	e := Entry{
		Level:     rec.Get("level").String(),
		Component: rec.Get("component").String(),
		Message:   rec.Get("message").String(),
		Error:     rec.Get("error").String(),
		Raw:       line,
	}
	if ts := rec.Get("time").String(); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Time = t
		}
	}
	rec.ForEach(func(key, value gjson.Result) bool {
		if _, skip := reserved[key.String()]; skip {
			return true
		}
		if e.Fields == nil {
			e.Fields = make(map[string]string)
		}
		e.Fields[key.String()] = value.String()
		return true
	})
	return e
}

// FieldKeys returns the entry's extra field names in sorted order.
func (e Entry) FieldKeys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
