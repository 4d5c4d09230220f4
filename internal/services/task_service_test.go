package services

import (
	"context"
	"testing"

	"github.com/Callymags/task-manager-api/internal/repository"
	"github.com/stretchr/testify/require"
)

func newTaskService() *TaskService {
	return NewTaskService(repository.NewMemoryTaskRepository())
}

func TestTaskService_CreateAndList(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	input := TaskInput{
		CategoryName:    "Home",
		TaskName:        "Clean",
		TaskDescription: "Clean the kitchen",
		IsUrgent:        true,
		DueDate:         "2024-01-01",
	}

	id, err := svc.Create(ctx, input, "bob")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	require.Equal(t, "Home", got.CategoryName)
	require.Equal(t, "Clean", got.TaskName)
	require.Equal(t, "Clean the kitchen", got.TaskDescription)
	require.True(t, got.IsUrgent)
	require.Equal(t, "2024-01-01", got.DueDate)
	require.Equal(t, "bob", got.CreatedBy)
}

func TestTaskService_Get(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	id, err := svc.Create(ctx, TaskInput{CategoryName: "Home", TaskName: "Clean"}, "bob")
	require.NoError(t, err)

	task, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Clean", task.TaskName)

	_, err = svc.Get(ctx, "5f2a000000000000000000aa")
	require.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Get(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, ErrTaskInvalidID)
}

func TestTaskService_UpdatePreservesCreator(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	id, err := svc.Create(ctx, TaskInput{CategoryName: "Home", TaskName: "Clean", IsUrgent: true}, "bob")
	require.NoError(t, err)

	// carol edits bob's task; the record keeps bob as creator
	updated, err := svc.Update(ctx, id, TaskInput{
		CategoryName: "Work",
		TaskName:     "Clean desk",
		IsUrgent:     false,
		DueDate:      "2024-06-01",
	})
	require.NoError(t, err)
	require.Equal(t, "bob", updated.CreatedBy)
	require.Equal(t, "Work", updated.CategoryName)
	require.False(t, updated.IsUrgent)

	stored, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "bob", stored.CreatedBy)
	require.Equal(t, "Clean desk", stored.TaskName)
	require.Equal(t, "2024-06-01", stored.DueDate)
}

func TestTaskService_Update_Missing(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Update(context.Background(), "5f2a000000000000000000aa", TaskInput{TaskName: "x"})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_DeleteThenGet(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	id, err := svc.Create(ctx, TaskInput{CategoryName: "Home", TaskName: "Clean"}, "bob")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Get(ctx, id)
	require.ErrorIs(t, err, ErrTaskNotFound)

	// Deleting an already-deleted task is a no-op
	require.NoError(t, svc.Delete(ctx, id))
}

func TestTaskService_Search(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	_, err := svc.Create(ctx, TaskInput{CategoryName: "Home", TaskName: "Buy groceries"}, "bob")
	require.NoError(t, err)
	_, err = svc.Create(ctx, TaskInput{CategoryName: "Home", TaskName: "Laundry", TaskDescription: "Also pick up Groceries"}, "bob")
	require.NoError(t, err)
	_, err = svc.Create(ctx, TaskInput{CategoryName: "Work", TaskName: "File taxes"}, "bob")
	require.NoError(t, err)

	// Case-insensitive match over name and description
	results, err := svc.Search(ctx, "groceries")
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = svc.Search(ctx, "taxes")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "File taxes", results[0].TaskName)

	// Empty query returns the full set
	results, err = svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, results, 3)
}
