package internal

// User is one participant's full record. Users are created at startup for
// every roster member and never deleted.
type User struct {
	Name     string          `json:"name"`
	Tasks    []Task          `json:"tasks"`
	Training []TrainingEntry `json:"training"`
	Insights []Insight       `json:"insights"`
	Sleep    *SleepRecord    `json:"sleep,omitempty"`
	Stats    Stats           `json:"stats"`
}

type Task struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Points      int    `json:"points"` // signed; penalty tasks carry negative points
	Completed   bool   `json:"completed"`
	Date        string `json:"date"` // local calendar day, YYYY-MM-DD
	IsRecurring bool   `json:"isRecurring,omitempty"`
	Note        string `json:"note,omitempty"`
}

type TrainingEntry struct {
	ID       string `json:"id"`
	BodyPart string `json:"bodyPart"`
	Rating   int    `json:"rating"` // 1–10 scale
	Date     string `json:"date"`
}

// Insight is a daily journal reflection, at most one per (user, date).
type Insight struct {
	Question string `json:"question"`
	Insight  string `json:"insight"`
	Date     string `json:"date"`
}

// SleepRecord is a single mutable record per user, not a history.
// Duration is derived from SleepTime/WakeTime and never set directly.
type SleepRecord struct {
	Date      string  `json:"date"`
	SleepTime string  `json:"sleepTime"` // HH:MM
	WakeTime  string  `json:"wakeTime"`  // HH:MM
	Duration  float64 `json:"duration"`  // hours, one fraction digit
}

type Stats struct {
	TotalPoints int `json:"totalPoints"`
	DailyWins   int `json:"dailyWins"`
}

// NewUser returns an empty record for a roster member.
func NewUser(name string) *User {
	return &User{
		Name:     name,
		Tasks:    []Task{},
		Training: []TrainingEntry{},
		Insights: []Insight{},
	}
}
