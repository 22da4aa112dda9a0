// Package layout turns a week of day slots into the renderable schedule
// structure and owns all Russian display formatting.
package layout

import (
	"fmt"
	"strings"

	"github.com/notmyst33d/schedapi-ssr/internal/model"
	"github.com/notmyst33d/schedapi-ssr/internal/week"
)

// Day and month name tables, indexed by day-slot position 0–5 and by
// zero-based month. Months are genitive case for "с 1 сентября" dates.
var (
	dayNames = [model.DaysPerWeek]string{
		"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота",
	}
	monthNames = [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
)

// assemblyHall is the one auditorium rendered without the "аудитория"
// prefix.
const assemblyHall = "Актовый зал"

// EmptyLabel is shown for lesson-free days and empty-slot placeholders.
const EmptyLabel = "Пусто"

// PromptSelectGroup is the terminal render when no group is chosen.
const PromptSelectGroup = "Выберите группу в списке"

// NoDataMessage is the terminal render for a week without any lessons.
// The week number is echoed verbatim, even when it is zero or negative.
func NoDataMessage(wk int) string {
	return fmt.Sprintf("Нет данных на неделю %d", wk)
}

// DayCell is one day's rendered block inside a schedule row.
type DayCell struct {
	DayName string
	Lines   []string
	Empty   bool
}

// Schedule is the renderable form of one week.
type Schedule struct {
	Caption string
	Rows    [][]DayCell
}

// LessonLine formats one lesson at a zero-based position into its
// display line. Placeholders render as "N. Пусто"; real lessons get a
// lowercased type suffix and an auditorium suffix when present.
func LessonLine(l model.Lesson, index int) string {
	if l.IsEmpty() {
		return fmt.Sprintf("%d. %s", index+1, EmptyLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s", index+1, l.Name)
	if l.LessonType != nil {
		b.WriteString(" ")
		b.WriteString(strings.ToLower(*l.LessonType))
	}
	if l.Auditorium != nil {
		if *l.Auditorium == assemblyHall {
			b.WriteString(", ")
			b.WriteString(strings.ToLower(*l.Auditorium))
		} else {
			b.WriteString(", аудитория ")
			b.WriteString(strings.ToLower(*l.Auditorium))
		}
	}
	return b.String()
}

// Caption is the week heading: "Неделя N, с 1 сентября по 6 сентября".
func Caption(epochMS int64, wk int) string {
	start := week.Start(epochMS, wk)
	end := week.End(epochMS, wk)
	return fmt.Sprintf("Неделя %d, с %d %s по %d %s",
		wk,
		start.Day(), monthNames[int(start.Month())-1],
		end.Day(), monthNames[int(end.Month())-1],
	)
}

// Build partitions the week's day slots into rows for the given device
// class. Mobile stacks one day per row; desktop pairs days two per row,
// leaving a one-day trailing row when the effective count is odd. Only
// the first six day slots are ever consumed.
func Build(days []model.DaySlot, device model.DeviceClass) [][]DayCell {
	if len(days) > model.DaysPerWeek {
		days = days[:model.DaysPerWeek]
	}

	cells := make([]DayCell, len(days))
	for i, day := range days {
		cells[i] = buildCell(day, i)
	}

	perRow := 2
	if device == model.DeviceMobile {
		perRow = 1
	}

	rows := make([][]DayCell, 0, (len(cells)+perRow-1)/perRow)
	for len(cells) > 0 {
		n := min(perRow, len(cells))
		rows = append(rows, cells[:n])
		cells = cells[n:]
	}
	return rows
}

func buildCell(day model.DaySlot, position int) DayCell {
	cell := DayCell{
		DayName: dayNames[position],
		Empty:   len(day) == 0,
	}
	for i, lesson := range day {
		cell.Lines = append(cell.Lines, LessonLine(lesson, i))
	}
	return cell
}
