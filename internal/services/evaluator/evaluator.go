// Package evaluator classifies a guess against a solution word using the
// standard two-pass Wordle algorithm with duplicate-letter accounting.
package evaluator

import (
	"strings"

	"github.com/ch00kz/adieu-backend/internal/model"
)

// Evaluate classifies guess against solution letter by letter and reports
// whether the guess wins. Both inputs are compared case-insensitively.
//
// Comparison proceeds position by position up to the shorter of the two
// strings; callers are expected to enforce equal lengths upstream.
//
// Pass one marks exact positional matches Correct and counts every
// unmatched solution character: how many slots still want that character.
// Pass two walks the provisionally Wrong positions left to right and
// upgrades a position to InTheWord while its character still has unmatched
// solution slots remaining. Repeated guess letters therefore consume credit
// leftmost-first; once the solution's count of a letter is exhausted, later
// occurrences stay Wrong.
//
// Evaluate is pure: no side effects, deterministic for identical inputs.
func Evaluate(guess, solution string) model.PlayerGuess {
	guessRunes := []rune(strings.ToLower(guess))
	solutionRunes := []rune(strings.ToLower(solution))

	n := len(guessRunes)
	if len(solutionRunes) < n {
		n = len(solutionRunes)
	}

	letters := make([]model.Letter, n)
	lookingFor := make(map[rune]int)

	for i := 0; i < n; i++ {
		if guessRunes[i] == solutionRunes[i] {
			letters[i] = model.Letter{Status: model.LetterStateCorrect, Char: guessRunes[i]}
		} else {
			lookingFor[solutionRunes[i]]++
			letters[i] = model.Letter{Status: model.LetterStateWrong, Char: guessRunes[i]}
		}
	}

	winning := true
	for i := range letters {
		if letters[i].Status == model.LetterStateCorrect {
			continue
		}
		winning = false
		if lookingFor[letters[i].Char] > 0 {
			letters[i].Status = model.LetterStateInTheWord
			lookingFor[letters[i].Char]--
		}
	}

	return model.PlayerGuess{
		Letters:        letters,
		IsWinningGuess: winning,
	}
}
