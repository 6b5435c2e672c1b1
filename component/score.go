package component

// Score tracks points and the difficulty ratchet derived from them
type Score struct {
	Value         int // Never negative
	Threshold     int // Last multiple of the step crossed, non-decreasing
	EnemyInterval int // Frames between enemy spawns, non-increasing
	MinInterval   int // Floor for EnemyInterval
}

// NewScore starts at zero with the given spawn cadence
func NewScore(baseInterval, minInterval int) Score {
	return Score{EnemyInterval: baseInterval, MinInterval: minInterval}
}

// Add applies delta floored at zero, then ratchets difficulty when a new
// step boundary is crossed. Returns true if the interval tightened
func (s *Score) Add(delta, step int, factor float64) bool {
	s.Value += delta
	if s.Value < 0 {
		s.Value = 0
	}
	if step <= 0 {
		return false
	}
	reached := (s.Value / step) * step
	if reached <= s.Threshold {
		return false
	}
	s.Threshold = reached
	next := int(float64(s.EnemyInterval) * factor)
	if next < s.MinInterval {
		next = s.MinInterval
	}
	s.EnemyInterval = next
	return true
}
