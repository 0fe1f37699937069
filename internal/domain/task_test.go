package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("  Buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, Task{Text: "Buy milk"}, task)

	_, err = NewTask(" \t ")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestTask_ActionFor(t *testing.T) {
	assert.Equal(t, ActionConfirmComplete, Task{Text: "a"}.ActionFor())
	assert.Equal(t, ActionConfirmDelete, Task{Text: "a", Completed: true}.ActionFor())
	assert.Equal(t, "complete", ActionConfirmComplete.String())
	assert.Equal(t, "delete", ActionConfirmDelete.String())
}

func TestEncodeRecord(t *testing.T) {
	assert.Equal(t, "Buy milk,false", EncodeRecord(Task{Text: "Buy milk"}))
	assert.Equal(t, "a, b,true", EncodeRecord(Task{Text: "a, b", Completed: true}))
}

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		want    Task
		wantErr bool
	}{
		{name: "open", record: "Buy milk,false", want: Task{Text: "Buy milk"}},
		{name: "completed", record: "Walk dog,true", want: Task{Text: "Walk dog", Completed: true}},
		{name: "flag is case insensitive", record: "x,TRUE", want: Task{Text: "x", Completed: true}},
		{name: "unknown flag is false", record: "x,yes", want: Task{Text: "x"}},
		{name: "text with commas", record: "eggs, milk, bread,true", want: Task{Text: "eggs, milk, bread", Completed: true}},
		{name: "empty text", record: ",false", want: Task{}},
		{name: "no separator", record: "nothing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecord(tt.record)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLegacyRecord(t *testing.T) {
	got, err := DecodeLegacyRecord("Buy milk,true")
	require.NoError(t, err)
	assert.Equal(t, Task{Text: "Buy milk", Completed: true}, got)

	_, err = DecodeLegacyRecord("a, b,true")
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = DecodeLegacyRecord("nothing")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestTaskList_RoundTripKeepsOrderAndDuplicates(t *testing.T) {
	tasks := []Task{
		{Text: "b"},
		{Text: "a, with comma", Completed: true},
		{Text: "b"},
	}

	got, dropped := DecodeTaskList(EncodeTaskList(tasks))
	assert.Zero(t, dropped)
	assert.Equal(t, tasks, got)
}

func TestDecodeTaskList_DropsMalformed(t *testing.T) {
	got, dropped := DecodeTaskList([]string{"ok,false", "broken", "done,true"})
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []Task{{Text: "ok"}, {Text: "done", Completed: true}}, got)
}

func TestEncodeLegacyTaskSet_CollapsesDuplicates(t *testing.T) {
	set := EncodeLegacyTaskSet([]Task{{Text: "a"}, {Text: "a"}, {Text: "a", Completed: true}})
	assert.Equal(t, []string{"a,false", "a,true"}, set)
}

func TestDecodeLegacyTaskSet(t *testing.T) {
	got, dropped := DecodeLegacyTaskSet([]string{"a,false", "x, y,true", "b,true"})
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []Task{{Text: "a"}, {Text: "b", Completed: true}}, got)
}

func TestEncodeTaskList_Empty(t *testing.T) {
	assert.Empty(t, EncodeTaskList(nil))
	got, dropped := DecodeTaskList(nil)
	assert.Empty(t, got)
	assert.Zero(t, dropped)
}
