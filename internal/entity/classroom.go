package entity

// Classroom is a bookable room. Equipment holds only flags that are
// present: an absent flag is an absent key, never a false value.
type Classroom struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Capacity  int             `json:"capacity"`
	Equipment map[string]bool `json:"equipment"`
}

// HasEquipment reports whether the named flag is set on the room.
func (c *Classroom) HasEquipment(name string) bool {
	return c.Equipment[name]
}
