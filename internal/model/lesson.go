package model

import "encoding/json"

// Lesson is a single slot entry in a day's schedule. It is a tagged
// variant: either a real lesson with a name and optional type/auditorium,
// or an empty-slot placeholder. The backend marks placeholders by the
// presence of an "empty" key; its value carries no meaning.
type Lesson struct {
	Name       string          `json:"name"`
	LessonType *string         `json:"lesson_type,omitempty"`
	Auditorium *string         `json:"auditorium,omitempty"`
	Empty      json.RawMessage `json:"empty,omitempty"`
}

// IsEmpty reports whether this entry is the empty-slot placeholder.
func (l Lesson) IsEmpty() bool {
	return l.Empty != nil
}

// EmptyLesson builds the empty-slot placeholder variant.
func EmptyLesson() Lesson {
	return Lesson{Empty: json.RawMessage("true")}
}

// DaySlot holds the ordered lessons of one calendar day. A day without
// lessons is an empty (but present) slice, distinct from a day holding
// empty-slot placeholders.
type DaySlot []Lesson

// DaysPerWeek is the number of day slots the backend returns per week
// (Monday through Saturday).
const DaysPerWeek = 6

// TotalLessons sums the lesson counts over all day slots.
func TotalLessons(days []DaySlot) int {
	total := 0
	for _, day := range days {
		total += len(day)
	}
	return total
}
