package model

import (
	"encoding/json"
	"testing"
)

func TestLessonEmptyMarkerPresence(t *testing.T) {
	// The placeholder is tagged by the presence of the "empty" key; its
	// value carries no meaning.
	cases := []struct {
		name  string
		raw   string
		empty bool
	}{
		{"real lesson", `{"name":"Физика","lesson_type":"Лекция","auditorium":"101"}`, false},
		{"marker true", `{"empty":true}`, true},
		{"marker null", `{"empty":null}`, true},
		{"marker zero", `{"empty":0}`, true},
		{"marker string", `{"empty":""}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l Lesson
			if err := json.Unmarshal([]byte(tc.raw), &l); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if l.IsEmpty() != tc.empty {
				t.Errorf("IsEmpty = %v, expected %v", l.IsEmpty(), tc.empty)
			}
		})
	}
}

func TestLessonOptionalFields(t *testing.T) {
	var l Lesson
	if err := json.Unmarshal([]byte(`{"name":"Математика"}`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.LessonType != nil || l.Auditorium != nil {
		t.Error("absent optional fields decoded as present")
	}
	if l.IsEmpty() {
		t.Error("named lesson classified as placeholder")
	}
}

func TestEmptyLessonConstructor(t *testing.T) {
	if !EmptyLesson().IsEmpty() {
		t.Error("EmptyLesson() is not a placeholder")
	}
}

func TestTotalLessons(t *testing.T) {
	days := []DaySlot{
		{EmptyLesson(), {Name: "Физика"}},
		{},
		{{Name: "Химия"}},
	}
	if got := TotalLessons(days); got != 3 {
		t.Errorf("TotalLessons = %d, expected 3", got)
	}
	if got := TotalLessons([]DaySlot{{}, {}, {}}); got != 0 {
		t.Errorf("TotalLessons of empty days = %d, expected 0", got)
	}
}

func TestGroupSelected(t *testing.T) {
	if GroupSelected("") || GroupSelected(NoGroup) {
		t.Error("sentinel values classified as a selection")
	}
	if !GroupSelected("1") {
		t.Error("real id not classified as a selection")
	}
}
