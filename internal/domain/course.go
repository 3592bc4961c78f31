package domain

// Course owns the slots assigned to one course and derives the rooms it
// uses on demand, with no stored redundancy.
type Course struct {
	Name  string     `json:"name"`
	Slots []*Creneau `json:"slots"`
}

// NewCourse returns a course with no slots.
func NewCourse(name string) *Course {
	return &Course{Name: name}
}

// AddSlot appends the slot. Returns ErrSlotConflict when it overlaps any slot
// already assigned to this course; the course is left untouched on failure.
func (c *Course) AddSlot(n *Creneau) error {
	for _, existing := range c.Slots {
		if n.OverlapsWith(existing) {
			return ErrSlotConflict
		}
	}
	c.Slots = append(c.Slots, n)
	return nil
}

// Rooms returns the deduplicated room names referenced by this course's
// slots, in first-seen order.
func (c *Course) Rooms() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, slot := range c.Slots {
		if _, ok := seen[slot.Room]; ok {
			continue
		}
		seen[slot.Room] = struct{}{}
		out = append(out, slot.Room)
	}
	return out
}
