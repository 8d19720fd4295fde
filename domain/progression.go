package domain

import (
	"math"
	"time"
)

// XPForCompletion returns the XP awarded for completing a task with the
// given priority and energy level. Both switches are exhaustive over the
// closed enums; a new variant must be given a value here before it compiles.
func XPForCompletion(priority TaskPriority, energy EnergyLevel) int {
	var p int
	switch priority {
	case PriorityCritical:
		p = 50
	case PriorityHigh:
		p = 30
	case PriorityMedium:
		p = 15
	case PriorityLow:
		p = 5
	}

	var e int
	switch energy {
	case EnergyHigh:
		e = 25
	case EnergyMedium:
		e = 10
	case EnergyLow:
		e = 5
	}

	return p + e
}

// LevelForXP derives the level from cumulative XP. Level is never stored
// independently of XP; callers recompute it on every XP change.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/50))) + 1
}

// DayOf formats a timestamp as the YYYY-MM-DD calendar day used for streak
// bookkeeping.
func DayOf(t time.Time) string {
	return t.Format(time.DateOnly)
}

// AdvanceStreak runs the daily streak transition on u. It fires at most once
// per calendar day: repeated calls on the same day are no-ops. A last-active
// date of exactly yesterday extends the streak; anything older, or no prior
// activity at all, resets it to 1.
func AdvanceStreak(u *User, now time.Time) {
	today := DayOf(now)
	if u.LastActiveDate == today {
		return
	}

	yesterday := DayOf(now.AddDate(0, 0, -1))
	if u.LastActiveDate == yesterday {
		u.Streak++
	} else {
		u.Streak = 1
	}
	u.LastActiveDate = today

	if u.Streak > u.BestStreak {
		u.BestStreak = u.Streak
	}
}

// ApplyActivity folds one activity event into the user's progression state:
// XP is added, the completion counter bumps when a task was completed, the
// level is recomputed from the new XP total, and the streak advances.
//
// XP only ever grows. Reverting a task to pending awards nothing and claws
// nothing back, so xpToAdd is never negative.
func ApplyActivity(u *User, xpToAdd int, taskCompleted bool, now time.Time) {
	if xpToAdd > 0 {
		u.XP += xpToAdd
	}
	if taskCompleted {
		u.TotalTasksCompleted++
	}
	u.Level = LevelForXP(u.XP)
	AdvanceStreak(u, now)
}
