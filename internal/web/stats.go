package web

import (
	"math"
	"time"

	"lifegoals/pkg/apiclient"
)

// Partition splits goals into in-progress and completed groups by the
// completion flag
func Partition(goals []apiclient.Goal) (inProgress, completed []apiclient.Goal) {
	for _, goal := range goals {
		if goal.Completed {
			completed = append(completed, goal)
		} else {
			inProgress = append(inProgress, goal)
		}
	}
	return inProgress, completed
}

// CompletionRate returns the percentage of completed goals, rounded to the
// nearest integer. An empty collection yields 0.
func CompletionRate(goals []apiclient.Goal) int {
	if len(goals) == 0 {
		return 0
	}

	completed := 0
	for _, goal := range goals {
		if goal.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(goals)) * 100))
}

// Greeting returns a time-of-day salutation for the dashboard header
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
