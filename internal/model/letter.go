package model

// LetterState classifies one guessed character against the solution
type LetterState string

const (
	// LetterStateCorrect means the letter is in the solution at this position
	LetterStateCorrect LetterState = "Correct"
	// LetterStateInTheWord means the letter is in the solution at another
	// position that no correct guess already accounts for
	LetterStateInTheWord LetterState = "InTheWord"
	// LetterStateWrong means the letter claims no remaining solution slot
	LetterStateWrong LetterState = "Wrong"
	// LetterStateUnsubmitted is a placeholder for board cells with no guess
	// behind them. Clients use it to prefill empty rows; evaluation never
	// produces it.
	LetterStateUnsubmitted LetterState = "Unsubmitted"
)

// Letter is the classification of a single guessed character
type Letter struct {
	Status LetterState
	Char   rune
}
