package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// cellGlyphs maps board cell tags to display characters, indexed by the
// piece-type tag written at lock time
var cellGlyphs = []string{".", "I", "O", "T", "S", "Z", "L", "J"}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResponse:
		o.printGameResponse(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case ScoreEntry:
		o.printScoreEntry(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PieceState response type (matches API)
type PieceState struct {
	Type  string  `json:"type"`
	Shape [][]int `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
}

// GameState response type
type GameState struct {
	ID             string      `json:"id"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	Board          [][]int     `json:"board"`
	Current        *PieceState `json:"current"`
	Next           *PieceState `json:"next"`
	Score          int         `json:"score"`
	Level          int         `json:"level"`
	Lines          int         `json:"lines"`
	DropIntervalMs int64       `json:"drop_interval_ms"`
	Over           bool        `json:"over"`
	Paused         bool        `json:"paused"`
}

// GameEvent response type
type GameEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// GameResponse response type
type GameResponse struct {
	State  GameState   `json:"state"`
	Events []GameEvent `json:"events"`
}

// ScoreEntry response type
type ScoreEntry struct {
	Rank        int       `json:"rank,omitempty"`
	Player      string    `json:"player"`
	Score       int       `json:"score"`
	Level       int       `json:"level"`
	Lines       int       `json:"lines"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries []ScoreEntry `json:"entries"`
}

// SubmitResult response type
type SubmitResult struct {
	Best     ScoreEntry `json:"best"`
	Improved bool       `json:"improved"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGameResponse(g GameResponse) {
	s := g.State
	fmt.Printf("Game: %s\n", s.ID)
	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", s.Score, s.Level, s.Lines)
	fmt.Printf("Drop interval: %dms\n", s.DropIntervalMs)
	if s.Paused {
		fmt.Println("Status: paused")
	} else if s.Over {
		fmt.Println("Status: game over")
	}
	if s.Next != nil {
		fmt.Printf("Next: %s\n", s.Next.Type)
	}

	o.printBoard(s)

	for _, e := range g.Events {
		fmt.Printf("Event: %s\n", e.Type)
	}
}

// printBoard renders the board grid with the falling piece overlaid
func (o *Output) printBoard(s GameState) {
	if len(s.Board) == 0 {
		return
	}

	// Copy the grid and overlay the current piece
	grid := make([][]int, len(s.Board))
	for y, row := range s.Board {
		grid[y] = make([]int, len(row))
		copy(grid[y], row)
	}
	if s.Current != nil {
		tag := pieceTag(s.Current.Type)
		for sy, row := range s.Current.Shape {
			for sx, v := range row {
				if v == 0 {
					continue
				}
				x, y := s.Current.X+sx, s.Current.Y+sy
				if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
					grid[y][x] = tag
				}
			}
		}
	}

	fmt.Print("+")
	for range grid[0] {
		fmt.Print("-")
	}
	fmt.Println("+")
	for _, row := range grid {
		fmt.Print("|")
		for _, cell := range row {
			glyph := "."
			if cell > 0 && cell < len(cellGlyphs) {
				glyph = cellGlyphs[cell]
			}
			fmt.Print(glyph)
		}
		fmt.Println("|")
	}
	fmt.Print("+")
	for range grid[0] {
		fmt.Print("-")
	}
	fmt.Println("+")
}

func pieceTag(name string) int {
	for tag, glyph := range cellGlyphs {
		if glyph == name {
			return tag
		}
	}
	return 0
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Println("No scores recorded yet")
		return
	}
	fmt.Printf("%-5s %-20s %8s %6s %6s\n", "Rank", "Player", "Score", "Level", "Lines")
	for _, e := range l.Entries {
		fmt.Printf("%-5d %-20s %8d %6d %6d\n", e.Rank, e.Player, e.Score, e.Level, e.Lines)
	}
}

func (o *Output) printScoreEntry(e ScoreEntry) {
	fmt.Printf("Player: %s\n", e.Player)
	if e.Rank > 0 {
		fmt.Printf("Rank: %d\n", e.Rank)
	}
	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", e.Score, e.Level, e.Lines)
	fmt.Printf("Submitted: %s\n", e.SubmittedAt.Format(time.RFC3339))
}

func (o *Output) printSubmitResult(r SubmitResult) {
	if r.Improved {
		fmt.Println("New personal best!")
	} else {
		fmt.Println("Did not beat the standing best")
	}
	o.printScoreEntry(r.Best)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
