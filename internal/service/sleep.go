package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

// SleepDuration computes elapsed hours between a bedtime and a wake time,
// both "HH:MM", rounded to one fraction digit. A wake time at or before the
// bedtime is assumed to fall on the next day, so equal times come out as a
// full 24 hours rather than zero.
func SleepDuration(sleepTime, wakeTime string) (float64, error) {
	sleep, err := parseClock(sleepTime)
	if err != nil {
		return 0, err
	}
	wake, err := parseClock(wakeTime)
	if err != nil {
		return 0, err
	}

	if wake <= sleep {
		wake += 24 * 60
	}
	hours := float64(wake-sleep) / 60
	return math.Round(hours*10) / 10, nil
}

// parseClock converts "HH:MM" to minutes past midnight. The whole string
// must be the time; trailing text is rejected.
func parseClock(s string) (int, error) {
	hours, minutes, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hh, err := strconv.Atoi(hours)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	mm, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return hh*60 + mm, nil
}

type SleepTimeRequest struct {
	Time string `json:"time" validate:"required"`
}

func ValidateSleepTimeRequest(req *SleepTimeRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	_, err := parseClock(req.Time)
	return err
}

// RecordBedtime stores tonight's bedtime. The duration is carried over from
// the previous night only when the existing record is for yesterday and has
// a wake time; otherwise it starts at zero until the wake time arrives.
func RecordBedtime(ctx context.Context, repo storage.UserRepository, name, sleepTime, date string) (*internal.SleepRecord, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	prevDate := previousDate(date)

	record := internal.SleepRecord{
		Date:      date,
		SleepTime: sleepTime,
	}
	if user.Sleep != nil {
		record.WakeTime = user.Sleep.WakeTime
		if user.Sleep.Date == prevDate && user.Sleep.WakeTime != "" {
			if d, err := SleepDuration(sleepTime, user.Sleep.WakeTime); err == nil {
				record.Duration = d
			}
		}
	}

	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Sleep: &record}); err != nil {
		return nil, err
	}
	return &record, nil
}

// RecordWake stores this morning's wake time and derives the duration when a
// bedtime is already on record.
func RecordWake(ctx context.Context, repo storage.UserRepository, name, wakeTime, date string) (*internal.SleepRecord, error) {
	user, err := repo.GetUser(ctx, name)
	if err != nil {
		return nil, err
	}

	record := internal.SleepRecord{
		Date:     date,
		WakeTime: wakeTime,
	}
	if user.Sleep != nil {
		record.SleepTime = user.Sleep.SleepTime
	}
	if record.SleepTime != "" {
		if d, err := SleepDuration(record.SleepTime, wakeTime); err == nil {
			record.Duration = d
		}
	}

	if err := repo.ReplaceUserFields(ctx, name, storage.UserPatch{Sleep: &record}); err != nil {
		return nil, err
	}
	return &record, nil
}

func previousDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format("2006-01-02")
}
