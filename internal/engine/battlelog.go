package engine

import "fmt"

const battleLogLines = 12

// battleLog keeps the most recent human-readable lines of a battle.
type battleLog struct {
	lines []string
}

func (l *battleLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if n := len(l.lines); n > battleLogLines {
		l.lines = append([]string(nil), l.lines[n-battleLogLines:]...)
	}
}

func (l *battleLog) tail() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
