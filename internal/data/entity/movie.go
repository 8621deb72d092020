package entity

// DefaultAgeLimit is applied to drafts submitted without an age limit.
const DefaultAgeLimit = 16

// Movie is a catalog record. ID stays empty until the remote store assigns one.
type Movie struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AgeLimit    int    `json:"ageLimit"`
}

// IsDraft reports whether the movie has not been persisted yet.
func (m Movie) IsDraft() bool {
	return m.ID == ""
}

// SameContent compares every field except the id.
func (m Movie) SameContent(other Movie) bool {
	return m.Title == other.Title &&
		m.Description == other.Description &&
		m.AgeLimit == other.AgeLimit
}
