package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TrustedSamu/Dome1v1/internal"
)

func TestCreateTaskDefaultsPoints(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	task, err := CreateTask(ctx, repo, "Dominik", &TaskRequest{Text: "Stretch"}, frozenDay)
	assert.NoError(t, err)
	assert.Equal(t, 5, task.Points)
	assert.False(t, task.Completed)
	assert.Equal(t, frozenDay, task.Date)

	user, err := repo.GetUser(ctx, "Dominik")
	assert.NoError(t, err)
	assert.Len(t, user.Tasks, 1)
}

func TestUpdateTaskTogglesPoints(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	task, err := CreateTask(ctx, repo, "Dominik", &TaskRequest{Text: "Read", Points: 10}, frozenDay)
	assert.NoError(t, err)

	done := true
	user, err := UpdateTask(ctx, repo, "Dominik", task.ID, &TaskUpdateRequest{Completed: &done})
	assert.NoError(t, err)
	assert.Equal(t, 10, user.Stats.TotalPoints)

	// Toggling back revokes the points.
	undone := false
	user, err = UpdateTask(ctx, repo, "Dominik", task.ID, &TaskUpdateRequest{Completed: &undone})
	assert.NoError(t, err)
	assert.Equal(t, 0, user.Stats.TotalPoints)

	// Re-sending the same state moves nothing.
	user, err = UpdateTask(ctx, repo, "Dominik", task.ID, &TaskUpdateRequest{Completed: &undone})
	assert.NoError(t, err)
	assert.Equal(t, 0, user.Stats.TotalPoints)
}

func TestUpdateTaskPenaltyGoesNegative(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Samu")))

	task, err := TrackHabit(ctx, repo, "Samu", &HabitRequest{Occurred: false}, frozenDay)
	assert.NoError(t, err)
	assert.Equal(t, -10, task.Points)

	done := true
	user, err := UpdateTask(ctx, repo, "Samu", task.ID, &TaskUpdateRequest{Completed: &done})
	assert.NoError(t, err)
	// No floor: completing a penalty task drives the total below zero.
	assert.Equal(t, -10, user.Stats.TotalPoints)
}

func TestUpdateTaskNote(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	task, err := CreateTask(ctx, repo, "Dominik", &TaskRequest{Text: "Read", Points: 10}, frozenDay)
	assert.NoError(t, err)

	note := "chapter 4"
	user, err := UpdateTask(ctx, repo, "Dominik", task.ID, &TaskUpdateRequest{Note: &note})
	assert.NoError(t, err)
	assert.Equal(t, "chapter 4", user.Tasks[0].Note)
	assert.Equal(t, 0, user.Stats.TotalPoints)
}

func TestSeedDailyTasksIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	added, err := SeedDailyTasks(ctx, repo, "Dominik", frozenDay)
	assert.NoError(t, err)
	assert.Len(t, added, len(dailyTaskTemplates))
	for _, task := range added {
		assert.Equal(t, DailyTaskID(task.Text, frozenDay), task.ID)
		assert.True(t, task.IsRecurring)
	}

	added, err = SeedDailyTasks(ctx, repo, "Dominik", frozenDay)
	assert.NoError(t, err)
	assert.Empty(t, added)

	user, err := repo.GetUser(ctx, "Dominik")
	assert.NoError(t, err)
	assert.Len(t, user.Tasks, len(dailyTaskTemplates))
}

func TestSeedDailyTasksNewDay(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	_, err := SeedDailyTasks(ctx, repo, "Dominik", frozenDay)
	assert.NoError(t, err)

	added, err := SeedDailyTasks(ctx, repo, "Dominik", "2024-01-02")
	assert.NoError(t, err)
	assert.Len(t, added, len(dailyTaskTemplates))
}

func TestTrackHabitUpserts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Samu")))

	task, err := TrackHabit(ctx, repo, "Samu", &HabitRequest{Occurred: true, Note: "rough day"}, frozenDay)
	assert.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "rough day", task.Note)

	// Same day again updates in place instead of duplicating.
	task, err = TrackHabit(ctx, repo, "Samu", &HabitRequest{Occurred: false}, frozenDay)
	assert.NoError(t, err)
	assert.False(t, task.Completed)

	user, err := repo.GetUser(ctx, "Samu")
	assert.NoError(t, err)
	assert.Len(t, user.Tasks, 1)
}
