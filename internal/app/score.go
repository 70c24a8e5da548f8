package app

import "math"

const (
	maxQuestionScore = 1000
	minQuestionScore = 700
)

// scoreAnswer maps the time spent on a correct answer to points: an instant
// answer earns maxQuestionScore, one at the buzzer earns minQuestionScore,
// linear in between. Wrong answers never reach this function.
func scoreAnswer(timePerQuestion, secondsRemaining int) int {
	if timePerQuestion <= 0 {
		return maxQuestionScore
	}
	ratio := float64(timePerQuestion-secondsRemaining) / float64(timePerQuestion)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(maxQuestionScore - ratio*(maxQuestionScore-minQuestionScore)))
}
