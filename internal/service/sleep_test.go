package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

func TestSleepDuration(t *testing.T) {
	cases := []struct {
		sleep, wake string
		want        float64
	}{
		{"22:00", "06:00", 8.0},
		{"23:30", "00:00", 0.5},
		{"06:00", "22:00", 16.0},
		{"23:45", "07:15", 7.5},
		{"00:00", "00:01", 0.0}, // 1 minute rounds to 0.0
		// Equal times span a full day rather than zero. Odd, but this is
		// the recorded behavior callers rely on.
		{"07:00", "07:00", 24.0},
	}

	for _, tc := range cases {
		got, err := SleepDuration(tc.sleep, tc.wake)
		assert.NoError(t, err)
		assert.InDelta(t, tc.want, got, 0.001, "duration(%s, %s)", tc.sleep, tc.wake)
	}
}

func TestSleepDurationInvalid(t *testing.T) {
	for _, s := range []string{"", "25:00", "10:75", "bedtime", "07:00junk", "7:00 pm", "-1:30", "22:00:00"} {
		_, err := SleepDuration(s, "07:00")
		assert.Error(t, err, "sleep time %q", s)
		_, err = SleepDuration("22:00", s)
		assert.Error(t, err, "wake time %q", s)
	}
}

func newTestRepo(t *testing.T) storage.UserRepository {
	t.Helper()
	repo, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "users.json"), internal.NewLogger("error", ""))
	assert.NoError(t, err)
	return repo
}

func TestRecordWakeDerivesDuration(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	_, err := RecordBedtime(ctx, repo, "Dominik", "22:30", "2024-01-01")
	assert.NoError(t, err)

	record, err := RecordWake(ctx, repo, "Dominik", "06:30", "2024-01-02")
	assert.NoError(t, err)
	assert.Equal(t, "22:30", record.SleepTime)
	assert.Equal(t, "06:30", record.WakeTime)
	assert.InDelta(t, 8.0, record.Duration, 0.001)

	user, err := repo.GetUser(ctx, "Dominik")
	assert.NoError(t, err)
	assert.NotNil(t, user.Sleep)
	assert.InDelta(t, 8.0, user.Sleep.Duration, 0.001)
}

func TestRecordWakeWithoutBedtime(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Samu")))

	record, err := RecordWake(ctx, repo, "Samu", "07:00", "2024-01-02")
	assert.NoError(t, err)
	assert.Equal(t, "", record.SleepTime)
	assert.Zero(t, record.Duration)
}

func TestRecordBedtimeKeepsPriorWake(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateUser(ctx, internal.NewUser("Dominik")))

	// Yesterday's wake time on record: tonight's bedtime back-computes the
	// previous span.
	_, err := RecordWake(ctx, repo, "Dominik", "06:00", "2024-01-01")
	assert.NoError(t, err)

	record, err := RecordBedtime(ctx, repo, "Dominik", "22:00", "2024-01-02")
	assert.NoError(t, err)
	assert.Equal(t, "06:00", record.WakeTime)
	assert.InDelta(t, 8.0, record.Duration, 0.001)
}
