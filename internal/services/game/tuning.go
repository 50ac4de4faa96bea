package game

import "time"

// TetrisLines is the clear count that sets the tetris flag on a
// lines-cleared event.
const TetrisLines = 4

// Config holds the gameplay tuning constants. Board dimensions are fixed at
// construction; the drop interval shrinks by DropIntervalStep per level down
// to MinDropInterval.
type Config struct {
	BoardWidth  int
	BoardHeight int

	BaseDropInterval time.Duration
	DropIntervalStep time.Duration
	MinDropInterval  time.Duration

	LinesPerLevel int
}

// DefaultConfig returns the standard 10x20 game tuning
func DefaultConfig() Config {
	return Config{
		BoardWidth:       10,
		BoardHeight:      20,
		BaseDropInterval: 1000 * time.Millisecond,
		DropIntervalStep: 100 * time.Millisecond,
		MinDropInterval:  100 * time.Millisecond,
		LinesPerLevel:    10,
	}
}

// LevelForLines returns the level reached after clearing the given total
// number of lines
func (c Config) LevelForLines(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/c.LinesPerLevel + 1
}

// DropIntervalForLevel returns the automatic-drop interval at the given level
func (c Config) DropIntervalForLevel(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := c.BaseDropInterval - time.Duration(level-1)*c.DropIntervalStep
	if interval < c.MinDropInterval {
		return c.MinDropInterval
	}
	return interval
}
