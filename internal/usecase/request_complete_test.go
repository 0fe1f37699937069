package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/testutil"
)

func TestRequestComplete_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository(
		domain.Task{Text: "open"},
		domain.Task{Text: "done", Completed: true},
	)
	uc := NewRequestComplete(repo)

	out, err := uc.Execute(context.Background(), RequestCompleteInput{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionConfirmComplete, out.Action)

	out, err = uc.Execute(context.Background(), RequestCompleteInput{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionConfirmDelete, out.Action)
	assert.Equal(t, "done", out.Task.Text)

	assert.Zero(t, repo.Saves)
}

func TestRequestComplete_Execute_NotFound(t *testing.T) {
	uc := NewRequestComplete(testutil.NewMockTaskRepository())

	_, err := uc.Execute(context.Background(), RequestCompleteInput{Index: 0})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
