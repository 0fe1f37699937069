// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"strings"
)

// PointsPerTask is the number of points awarded when a task is completed.
const PointsPerTask = 10

// recordSeparator joins a task's text and its completed flag in a record.
const recordSeparator = ","

// Task represents a to-do entry. A task has no stable ID; it is identified by
// its position in the task list.
type Task struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// NewTask creates an uncompleted task after trimming the text.
// Returns ErrEmptyText if nothing is left after trimming.
func NewTask(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	return Task{Text: text}, nil
}

// TaskAction is the confirmation a UI should ask for when a task is activated.
type TaskAction int

const (
	ActionConfirmComplete TaskAction = iota // Task is open: ask whether it was completed
	ActionConfirmDelete                     // Task is done: ask whether to delete it
)

// String returns a human-readable name of the action.
func (a TaskAction) String() string {
	switch a {
	case ActionConfirmComplete:
		return "complete"
	case ActionConfirmDelete:
		return "delete"
	}
	return "unknown"
}

// ActionFor returns the confirmation that should be prompted for the task.
func (t Task) ActionFor() TaskAction {
	if t.Completed {
		return ActionConfirmDelete
	}
	return ActionConfirmComplete
}

// EncodeRecord encodes the task as "<text>,<completed>".
func EncodeRecord(t Task) string {
	return t.Text + recordSeparator + strconv.FormatBool(t.Completed)
}

// DecodeRecord decodes a record from the ordered list format.
// The completed flag follows the last comma, so the text may contain commas.
func DecodeRecord(record string) (Task, error) {
	idx := strings.LastIndex(record, recordSeparator)
	if idx < 0 {
		return Task{}, ErrMalformedRecord
	}
	return Task{
		Text:      record[:idx],
		Completed: parseFlag(record[idx+1:]),
	}, nil
}

// DecodeLegacyRecord decodes a record from the legacy string-set format.
// A record must split into exactly two fields; anything else is malformed.
func DecodeLegacyRecord(record string) (Task, error) {
	fields := strings.Split(record, recordSeparator)
	if len(fields) != 2 {
		return Task{}, ErrMalformedRecord
	}
	return Task{
		Text:      fields[0],
		Completed: parseFlag(fields[1]),
	}, nil
}

// parseFlag treats only "true" (any case) as true.
func parseFlag(s string) bool {
	return strings.EqualFold(s, "true")
}

// EncodeTaskList encodes tasks in order, one record per task.
func EncodeTaskList(tasks []Task) []string {
	records := make([]string, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, EncodeRecord(t))
	}
	return records
}

// DecodeTaskList decodes ordered records, dropping malformed ones.
// It returns the decoded tasks and the number of dropped records.
func DecodeTaskList(records []string) ([]Task, int) {
	return decodeAll(records, DecodeRecord)
}

// EncodeLegacyTaskSet encodes tasks into the legacy set format.
// Identical records collapse into one entry.
func EncodeLegacyTaskSet(tasks []Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	set := make([]string, 0, len(tasks))
	for _, t := range tasks {
		r := EncodeRecord(t)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		set = append(set, r)
	}
	return set
}

// DecodeLegacyTaskSet decodes legacy set records, dropping malformed ones.
func DecodeLegacyTaskSet(records []string) ([]Task, int) {
	return decodeAll(records, DecodeLegacyRecord)
}

func decodeAll(records []string, decode func(string) (Task, error)) ([]Task, int) {
	tasks := make([]Task, 0, len(records))
	dropped := 0
	for _, r := range records {
		t, err := decode(r)
		if err != nil {
			dropped++
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, dropped
}
