package model

// Group is one selectable study group from the backend roster.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NoGroup is the sentinel select-option value meaning "no group chosen".
const NoGroup = "none"

// GroupSelected reports whether id names a real group rather than the
// absent/sentinel state.
func GroupSelected(id string) bool {
	return id != "" && id != NoGroup
}
