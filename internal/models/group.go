package models

// Group represents a reusable member list that shared expenses are recorded against.
// Members are fixed once the group is created.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// Members is the list of member names in this group.
	// Uniqueness is checked when the group is created.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether name is one of the group's members.
func (g *Group) HasMember(name string) bool {
	for _, m := range g.Members {
		if m == name {
			return true
		}
	}
	return false
}
