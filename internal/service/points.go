package service

import "github.com/TrustedSamu/Dome1v1/internal"

// DailyPoints sums the points of completed tasks dated date. Points are
// signed, so penalty tasks pull the total down.
func DailyPoints(tasks []internal.Task, date string) int {
	total := 0
	for _, t := range tasks {
		if t.Date == date && t.Completed {
			total += t.Points
		}
	}
	return total
}

type UserPoints struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ResolveWinner picks the participant with strictly greater points than every
// other participant. Any tie for the maximum, including 0–0, means no winner.
// Fewer than two entries never produce a winner.
func ResolveWinner(totals []UserPoints) (string, bool) {
	if len(totals) < 2 {
		return "", false
	}

	best := totals[0]
	unique := true
	for _, t := range totals[1:] {
		switch {
		case t.Points > best.Points:
			best = t
			unique = true
		case t.Points == best.Points:
			unique = false
		}
	}
	if !unique {
		return "", false
	}
	return best.Name, true
}
