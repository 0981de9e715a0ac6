// Package grade maps a quality score to a letter grade and display color.
package grade

// Letter is a single-letter quality grade.
type Letter string

// Letter grades, best first.
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterF Letter = "F"
)

// Grade is a classified score. It is derived on every render and never stored.
type Grade struct {
	Letter Letter
	Color  string
}

// threshold is the lowest score that earns a grade.
type threshold struct {
	min   float64
	grade Grade
}

// thresholds are evaluated top-down; the first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var thresholds = []threshold{
	{min: 90, grade: Grade{Letter: LetterA, Color: "#00b894"}},
	{min: 80, grade: Grade{Letter: LetterB, Color: "#0984e3"}},
	{min: 60, grade: Grade{Letter: LetterC, Color: "#f39c12"}},
	{min: 40, grade: Grade{Letter: LetterD, Color: "#e17055"}},
}

// failing is returned for any score below the lowest threshold, and for NaN.
//
//nolint:gochecknoglobals // Read-only value.
var failing = Grade{Letter: LetterF, Color: "#d63031"}

// Classify returns the grade for score. The raw value is compared without
// rounding or clamping, so boundary values map to the higher grade.
func Classify(score float64) Grade {
	for _, t := range thresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return failing
}

// String returns the letter.
func (g Grade) String() string {
	return string(g.Letter)
}
