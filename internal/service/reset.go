package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

// DateProvider supplies the current local calendar date as YYYY-MM-DD.
// Injected so tests can freeze the day.
type DateProvider func() string

// Today is the wall-clock DateProvider.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// RunDailyReset is the once-per-day rollover. It awards the daily win to the
// participant with the strictly highest completed-task points for today, then
// independently for every user prunes completed tasks, drops training entries
// from other days, and resets non-today insights to an empty placeholder.
//
// Per-user updates are not transactional across users: one user's failure is
// logged and reported but never rolls back or blocks another's.
func RunDailyReset(ctx context.Context, repo storage.UserRepository, today string, logger internal.Logger) (string, error) {
	users, err := repo.GetAllUsers(ctx)
	if err != nil {
		logger.Errorf("daily reset: failed to load users: %v", err)
		return "", err
	}

	var errs []error
	winner := ""

	if len(users) >= 2 {
		totals := make([]UserPoints, 0, len(users))
		for _, u := range users {
			totals = append(totals, UserPoints{Name: u.Name, Points: DailyPoints(u.Tasks, today)})
		}
		if name, ok := ResolveWinner(totals); ok {
			winner = name
			for _, u := range users {
				if u.Name != name {
					continue
				}
				stats := u.Stats
				stats.DailyWins++
				if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Stats: &stats}); err != nil {
					logger.Errorf("daily reset: failed to record win for %s: %v", name, err)
					errs = append(errs, fmt.Errorf("record win for %s: %w", name, err))
					winner = ""
				}
				break
			}
		}
	}

	for _, u := range users {
		patch := rolloverPatch(u, today)
		if err := repo.ReplaceUserFields(ctx, u.Name, patch); err != nil {
			logger.Errorf("daily reset: failed to reset %s: %v", u.Name, err)
			errs = append(errs, fmt.Errorf("reset %s: %w", u.Name, err))
		}
	}

	if len(errs) > 0 {
		return winner, errors.Join(errs...)
	}
	logger.Infof("daily reset complete for %s (winner: %s)", today, winnerOrNone(winner))
	return winner, nil
}

// rolloverPatch builds the per-user date rotation: completed tasks go away
// regardless of date, training survives only for today, and every insight not
// dated today is replaced by an empty slot for today.
func rolloverPatch(u internal.User, today string) storage.UserPatch {
	tasks := make([]internal.Task, 0, len(u.Tasks))
	for _, t := range u.Tasks {
		if !t.Completed {
			tasks = append(tasks, t)
		}
	}

	training := make([]internal.TrainingEntry, 0, len(u.Training))
	for _, t := range u.Training {
		if t.Date == today {
			training = append(training, t)
		}
	}

	insights := make([]internal.Insight, 0, len(u.Insights))
	for _, i := range u.Insights {
		if i.Date == today {
			insights = append(insights, i)
		} else {
			insights = append(insights, internal.Insight{Date: today})
		}
	}

	return storage.UserPatch{Tasks: &tasks, Training: &training, Insights: &insights}
}

func winnerOrNone(winner string) string {
	if winner == "" {
		return "none"
	}
	return winner
}
