// Package scoring converts a finished level attempt into a star rating.
package scoring

import "fmt"

// MaxStars is the best rating a level can earn.
const MaxStars = 3

// Rate returns the star rating for score correct answers out of total
// questions: a perfect run earns 3, at least 60% earns 2, anything else 1.
// A finished attempt always earns at least one star.
//
// Rate panics if total is not positive or score is outside [0, total];
// callers must never finish a level without questions.
func Rate(score, total int) int {
	if total <= 0 {
		panic(fmt.Sprintf("scoring: total must be positive, got %d", total))
	}
	if score < 0 || score > total {
		panic(fmt.Sprintf("scoring: score %d out of range [0, %d]", score, total))
	}
	switch {
	case score == total:
		return 3
	case score*100 >= 60*total:
		return 2
	default:
		return 1
	}
}

// Message returns the encouragement shown on the result screen.
func Message(stars int) string {
	switch {
	case stars >= 3:
		return "太神啦！完美通關！🏆"
	case stars == 2:
		return "做得很好！繼續冒險！✨"
	default:
		return "加油！多試幾次就會了！🔥"
	}
}

// Percent returns score/total as a whole percentage, rounded down.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return score * 100 / total
}
