package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

var validate = validator.New()

// Recurring tasks seeded for every participant each day.
var dailyTaskTemplates = []internal.Task{
	{Text: "Make the bed", Points: 5, IsRecurring: true},
	{Text: "Read (15+ minutes)", Points: 10, IsRecurring: true},
	{Text: "Meditate/Pray", Points: 10, IsRecurring: true},
	{Text: "Brush teeth (morning)", Points: 5, IsRecurring: true},
	{Text: "Brush teeth (evening)", Points: 5, IsRecurring: true},
}

// The tracked habit is a single recurring penalty task per day.
const (
	habitTaskText   = "Habit slip"
	habitTaskPoints = -10
)

type TaskRequest struct {
	Text        string `json:"text" validate:"required"`
	Points      int    `json:"points"`
	IsRecurring bool   `json:"isRecurring"`
	Note        string `json:"note,omitempty"`
}

func ValidateTaskRequest(req *TaskRequest) error {
	return validate.Struct(req)
}

// DailyTaskID builds the deterministic id for a recurring task, keyed on
// (text, date) so re-seeding the same day cannot duplicate it.
func DailyTaskID(text, date string) string {
	return fmt.Sprintf("daily-%s-%s", text, date)
}

// CreateTask appends a new task dated date to the user's list. A zero point
// value falls back to the default of 5, mirroring the lenient input policy
// for non-numeric points.
func CreateTask(ctx context.Context, repo storage.UserRepository, name string, req *TaskRequest, date string) (*internal.Task, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	points := req.Points
	if points == 0 {
		points = 5
	}

	task := internal.Task{
		ID:          uuid.NewString(),
		Text:        req.Text,
		Points:      points,
		Completed:   false,
		Date:        date,
		IsRecurring: req.IsRecurring,
		Note:        req.Note,
	}
	if req.IsRecurring {
		task.ID = DailyTaskID(req.Text, date)
	}

	tasks := append(user.Tasks, task)
	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Tasks: &tasks}); err != nil {
		return nil, err
	}
	return &task, nil
}

type TaskUpdateRequest struct {
	Completed *bool   `json:"completed,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// UpdateTask toggles completion and/or edits the note of one task. Flipping
// the completed flag moves the user's total points by the task's point value
// in the matching direction. Unknown task ids are a no-op.
func UpdateTask(ctx context.Context, repo storage.UserRepository, name, taskID string, req *TaskUpdateRequest) (*internal.User, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	patch := storage.UserPatch{}
	tasks := make([]internal.Task, len(user.Tasks))
	copy(tasks, user.Tasks)

	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		if req.Note != nil {
			tasks[i].Note = *req.Note
		}
		if req.Completed != nil && *req.Completed != tasks[i].Completed {
			tasks[i].Completed = *req.Completed
			stats := user.Stats
			if *req.Completed {
				stats.TotalPoints += tasks[i].Points
			} else {
				stats.TotalPoints -= tasks[i].Points
			}
			patch.Stats = &stats
			user.Stats = stats
		}
		patch.Tasks = &tasks
		break
	}

	if patch.IsEmpty() {
		return user, nil
	}
	if err := repo.ReplaceUserFields(ctx, name, patch); err != nil {
		return nil, err
	}
	user.Tasks = tasks
	return user, nil
}

// SeedDailyTasks adds today's recurring tasks that the user does not already
// have, keyed on task text for the day.
func SeedDailyTasks(ctx context.Context, repo storage.UserRepository, name, date string) ([]internal.Task, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool)
	for _, t := range user.Tasks {
		if t.Date == date && t.IsRecurring {
			existing[t.Text] = true
		}
	}

	var added []internal.Task
	for _, tpl := range dailyTaskTemplates {
		if existing[tpl.Text] {
			continue
		}
		task := tpl
		task.ID = DailyTaskID(tpl.Text, date)
		task.Date = date
		added = append(added, task)
	}
	if len(added) == 0 {
		return nil, nil
	}

	tasks := append(user.Tasks, added...)
	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Tasks: &tasks}); err != nil {
		return nil, err
	}
	return added, nil
}

type HabitRequest struct {
	Occurred bool   `json:"occurred"`
	Note     string `json:"note,omitempty"`
}

// TrackHabit upserts today's habit-counter task: a recurring penalty task
// whose completed flag records whether the habit occurred.
func TrackHabit(ctx context.Context, repo storage.UserRepository, name string, req *HabitRequest, date string) (*internal.Task, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	tasks := make([]internal.Task, len(user.Tasks))
	copy(tasks, user.Tasks)

	for i := range tasks {
		if tasks[i].Date == date && tasks[i].Text == habitTaskText {
			tasks[i].Completed = req.Occurred
			tasks[i].Note = req.Note
			if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Tasks: &tasks}); err != nil {
				return nil, err
			}
			return &tasks[i], nil
		}
	}

	task := internal.Task{
		ID:          fmt.Sprintf("habit-%s", date),
		Text:        habitTaskText,
		Points:      habitTaskPoints,
		Completed:   req.Occurred,
		Date:        date,
		IsRecurring: true,
		Note:        req.Note,
	}
	tasks = append(tasks, task)
	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Tasks: &tasks}); err != nil {
		return nil, err
	}
	return &task, nil
}
