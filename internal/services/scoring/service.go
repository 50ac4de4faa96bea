package scoring

// Reference scoring law: cleared lines score linesCleared * 100 * level,
// with no separate tetris multiplier; hard drops score a flat 2 points per
// cell of forced descent, independent of level.
const (
	lineClearBase   = 100
	hardDropPerCell = 2
)

// Service maps gameplay outcomes to point deltas. All methods are pure.
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// LineClearPoints returns the points awarded for clearing the given number
// of lines at the given level. Zero lines score zero at every level.
func (s *Service) LineClearPoints(cleared, level int) int {
	if cleared <= 0 {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return cleared * lineClearBase * level
}

// HardDropPoints returns the bonus for a hard drop of the given distance
func (s *Service) HardDropPoints(distance int) int {
	if distance <= 0 {
		return 0
	}
	return distance * hardDropPerCell
}
