package pdb

// A Structure is a fully parsed coordinate file, an ordered sequence of
// models plus the unit cell if a CRYST1 record was seen. Once Read has
// returned, nothing mutates the tree, so any number of readers may
// traverse it at the same time.
type Structure struct {
	Models []*Model

	defaultModel    *Model
	byNumber        map[int]*Model
	unitCellLengths [3]float64
	unitCellAngles  [3]float64
	hasUnitCell     bool
}

// Model looks up a model by its number. With duplicate numbers, which
// only happen in files that never declare any, the first one wins.
func (s *Structure) Model(number int) (*Model, bool) {
	m, ok := s.byNumber[number]
	return m, ok
}

// DefaultModel returns the first model, or nil for an empty structure.
func (s *Structure) DefaultModel() *Model { return s.defaultModel }

// ModelNumbers returns the distinct model numbers in file order.
func (s *Structure) ModelNumbers() []int {
	nums := make([]int, 0, len(s.byNumber))
	seen := make(map[int]bool)
	for _, m := range s.Models {
		if !seen[m.Number] {
			seen[m.Number] = true
			nums = append(nums, m.Number)
		}
	}
	return nums
}

// NumModels returns the number of models.
func (s *Structure) NumModels() int { return len(s.Models) }

// UnitCellLengths returns the crystallographic cell edge lengths. ok is
// false if the file had no CRYST1 record.
func (s *Structure) UnitCellLengths() ([3]float64, bool) {
	return s.unitCellLengths, s.hasUnitCell
}

// UnitCellAngles returns the crystallographic cell angles. ok is false
// if the file had no CRYST1 record.
func (s *Structure) UnitCellAngles() ([3]float64, bool) {
	return s.unitCellAngles, s.hasUnitCell
}

func (s *Structure) finalize() {
	for _, m := range s.Models {
		m.finalize()
	}
}
