package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TrustedSamu/Dome1v1/internal"
)

func TestDailyPoints(t *testing.T) {
	tasks := []internal.Task{
		{ID: "t1", Text: "Make the bed", Points: 5, Completed: true, Date: "2024-01-01"},
		{ID: "t2", Text: "Read", Points: 10, Completed: true, Date: "2024-01-01"},
		{ID: "t3", Text: "Meditate", Points: 10, Completed: false, Date: "2024-01-01"},
		{ID: "t4", Text: "Old chore", Points: 50, Completed: true, Date: "2023-12-31"},
	}

	assert.Equal(t, 15, DailyPoints(tasks, "2024-01-01"))
	assert.Equal(t, 50, DailyPoints(tasks, "2023-12-31"))
	assert.Equal(t, 0, DailyPoints(tasks, "2024-01-02"))
}

func TestDailyPointsEmpty(t *testing.T) {
	assert.Equal(t, 0, DailyPoints(nil, "2024-01-01"))
	assert.Equal(t, 0, DailyPoints([]internal.Task{}, "2024-01-01"))
}

func TestDailyPointsAllIncomplete(t *testing.T) {
	tasks := []internal.Task{
		{ID: "t1", Points: 5, Completed: false, Date: "2024-01-01"},
		{ID: "t2", Points: 10, Completed: false, Date: "2024-01-01"},
	}
	assert.Equal(t, 0, DailyPoints(tasks, "2024-01-01"))
}

func TestDailyPointsNegative(t *testing.T) {
	tasks := []internal.Task{
		{ID: "t1", Points: 5, Completed: true, Date: "2024-01-01"},
		{ID: "h1", Text: "Habit slip", Points: -10, Completed: true, Date: "2024-01-01"},
	}
	// Penalty tasks subtract; totals may go negative.
	assert.Equal(t, -5, DailyPoints(tasks, "2024-01-01"))
}

func TestResolveWinnerTwoUsers(t *testing.T) {
	cases := []struct {
		name    string
		a, b    int
		winner  string
		decided bool
	}{
		{"a wins", 5, 3, "A", true},
		{"b wins", 3, 5, "B", true},
		{"tie", 4, 4, "", false},
		{"zero tie", 0, 0, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			winner, ok := ResolveWinner([]UserPoints{{Name: "A", Points: tc.a}, {Name: "B", Points: tc.b}})
			assert.Equal(t, tc.decided, ok)
			assert.Equal(t, tc.winner, winner)
		})
	}
}

func TestResolveWinnerManyUsers(t *testing.T) {
	winner, ok := ResolveWinner([]UserPoints{
		{Name: "A", Points: 3},
		{Name: "B", Points: 9},
		{Name: "C", Points: 7},
	})
	assert.True(t, ok)
	assert.Equal(t, "B", winner)

	// A shared maximum never awards a win, even when others trail.
	winner, ok = ResolveWinner([]UserPoints{
		{Name: "A", Points: 9},
		{Name: "B", Points: 9},
		{Name: "C", Points: 2},
	})
	assert.False(t, ok)
	assert.Equal(t, "", winner)
}

func TestResolveWinnerTooFew(t *testing.T) {
	_, ok := ResolveWinner([]UserPoints{{Name: "A", Points: 10}})
	assert.False(t, ok)

	_, ok = ResolveWinner(nil)
	assert.False(t, ok)
}
