package tetris

import "fmt"

// LinesPerLevel is the number of cleared lines needed to advance a level.
const LinesPerLevel = 10

// MaxClearedLines is the most lines a single lock can clear.
const MaxClearedLines = 4

// Base point tables before the level multiplier. Zero entries for spin
// rows mark combinations the rules cannot produce (a mini spin clearing
// three or more lines, a full spin clearing four); they price at zero
// rather than erroring so lock never has to special-case them.
var (
	noSpinPoints     = [MaxClearedLines + 1]int{0, 100, 300, 500, 800}
	miniSpinPoints   = [MaxClearedLines + 1]int{100, 200, 400, 0, 0}
	normalSpinPoints = [MaxClearedLines + 1]int{400, 800, 1200, 1600, 0}
)

// ScoreFor prices a lock that cleared the given number of lines at the
// given level with the given spin classification. Out-of-range lines or
// levels are hard errors; impossible (lines, spin) combinations are
// callable and yield zero.
func ScoreFor(lines, level int, spin Spin) (int, error) {
	if lines < 0 || lines > MaxClearedLines {
		return 0, fmt.Errorf("tetris: cleared lines must be 0..%d, got %d", MaxClearedLines, lines)
	}
	if level < 1 {
		return 0, fmt.Errorf("tetris: level must be >= 1, got %d", level)
	}
	var base int
	switch spin {
	case SpinNone:
		base = noSpinPoints[lines]
	case SpinMini:
		base = miniSpinPoints[lines]
	case SpinNormal:
		base = normalSpinPoints[lines]
	default:
		return 0, fmt.Errorf("tetris: unknown spin classification %d", spin)
	}
	return base * level, nil
}

// LevelForLines returns the level reached after clearing the given total
// number of lines. Levels start at 1.
func LevelForLines(total int) int {
	if total < 0 {
		total = 0
	}
	return total/LinesPerLevel + 1
}
