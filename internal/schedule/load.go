package schedule

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// Column names accepted in CSV headers and structured payloads.
const (
	colID         = "id"
	colDiscipline = "discipline"
	colStart      = "start"
	colEnd        = "end"
	colDate       = "date"
	colTaskID     = "task_id"
	colProgress   = "progress"
)

// taskDoc is the wire form of a Task in JSON and YAML payloads.
type taskDoc struct {
	ID         string `json:"id"         yaml:"id"`
	Discipline string `json:"discipline" yaml:"discipline"`
	Start      string `json:"start"      yaml:"start"`
	End        string `json:"end"        yaml:"end"`
}

// reportDoc is the wire form of a Report in JSON and YAML payloads.
type reportDoc struct {
	Date     string   `json:"date"     yaml:"date"`
	TaskID   string   `json:"task_id"  yaml:"task_id"`
	Progress *float64 `json:"progress" yaml:"progress"`
}

// LoadTasksCSV reads reference tasks from a header-mapped CSV stream.
// Required columns: id, start, end. Dates use the 2006-01-02 layout.
func LoadTasksCSV(r io.Reader) ([]Task, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	if err := requireColumns(header, colID, colStart, colEnd); err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(rows))

	for i, row := range rows {
		start, startErr := parseDay(row[header[colStart]])
		if startErr != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, startErr)
		}

		end, endErr := parseDay(row[header[colEnd]])
		if endErr != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, endErr)
		}

		task := Task{
			ID:         row[header[colID]],
			Discipline: columnValue(row, header, colDiscipline),
			Start:      start,
			End:        end,
		}

		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// LoadReportsCSV reads progress reports from a header-mapped CSV stream.
// Required columns: date, task_id, progress.
func LoadReportsCSV(r io.Reader) ([]Report, error) {
	rows, header, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	if err := requireColumns(header, colDate, colTaskID, colProgress); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(rows))

	for i, row := range rows {
		date, dateErr := parseDay(row[header[colDate]])
		if dateErr != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, dateErr)
		}

		progress, progErr := strconv.ParseFloat(strings.TrimSpace(row[header[colProgress]]), 64)
		if progErr != nil {
			return nil, fmt.Errorf("row %d: %w: %q", i+1, ErrInvalidProgress, row[header[colProgress]])
		}

		report := Report{
			Date:     date,
			TaskID:   row[header[colTaskID]],
			Progress: progress,
		}

		if err := report.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// LoadTasksJSON reads reference tasks from a JSON array, validated against
// the embedded schema before decoding.
func LoadTasksJSON(payload []byte) ([]Task, error) {
	if err := validateJSON(taskSchema, payload); err != nil {
		return nil, err
	}

	var docs []taskDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	return tasksFromDocs(docs)
}

// LoadReportsJSON reads progress reports from a JSON array, validated
// against the embedded schema before decoding.
func LoadReportsJSON(payload []byte) ([]Report, error) {
	if err := validateJSON(reportSchema, payload); err != nil {
		return nil, err
	}

	var docs []reportDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	return reportsFromDocs(docs)
}

// LoadTasksYAML reads reference tasks from a YAML sequence.
func LoadTasksYAML(payload []byte) ([]Task, error) {
	var docs []taskDoc
	if err := yaml.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	return tasksFromDocs(docs)
}

// LoadReportsYAML reads progress reports from a YAML sequence.
func LoadReportsYAML(payload []byte) ([]Report, error) {
	var docs []reportDoc
	if err := yaml.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}

	return reportsFromDocs(docs)
}

func tasksFromDocs(docs []taskDoc) ([]Task, error) {
	tasks := make([]Task, 0, len(docs))

	for i, doc := range docs {
		if doc.Start == "" {
			return nil, fmt.Errorf("task %d: %w: %s", i+1, ErrMissingColumn, colStart)
		}

		if doc.End == "" {
			return nil, fmt.Errorf("task %d: %w: %s", i+1, ErrMissingColumn, colEnd)
		}

		start, startErr := parseDay(doc.Start)
		if startErr != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, startErr)
		}

		end, endErr := parseDay(doc.End)
		if endErr != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, endErr)
		}

		task := Task{ID: doc.ID, Discipline: doc.Discipline, Start: start, End: end}

		if err := task.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

func reportsFromDocs(docs []reportDoc) ([]Report, error) {
	reports := make([]Report, 0, len(docs))

	for i, doc := range docs {
		if doc.Date == "" {
			return nil, fmt.Errorf("report %d: %w: %s", i+1, ErrMissingColumn, colDate)
		}

		if doc.Progress == nil {
			return nil, fmt.Errorf("report %d: %w: %s", i+1, ErrMissingColumn, colProgress)
		}

		date, dateErr := parseDay(doc.Date)
		if dateErr != nil {
			return nil, fmt.Errorf("report %d: %w", i+1, dateErr)
		}

		report := Report{Date: date, TaskID: doc.TaskID, Progress: *doc.Progress}

		if err := report.Validate(); err != nil {
			return nil, fmt.Errorf("report %d: %w", i+1, err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// readCSV reads all rows and maps header names to column indexes. Header
// names are matched case-insensitively with surrounding space ignored.
func readCSV(r io.Reader) (rows [][]string, header map[string]int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, readErr := reader.ReadAll()
	if readErr != nil {
		return nil, nil, fmt.Errorf("read csv: %w", readErr)
	}

	if len(records) == 0 {
		return nil, map[string]int{}, nil
	}

	header = make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return records[1:], header, nil
}

func requireColumns(header map[string]int, names ...string) error {
	for _, name := range names {
		if _, ok := header[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return nil
}

func columnValue(row []string, header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return row[idx]
}

func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		// Producers occasionally export full timestamps.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
	}

	return dateutil.Day(t), nil
}
