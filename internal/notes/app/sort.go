package app

import (
	"slices"
	"time"

	"golang.org/x/text/collate"

	"localnotes/internal/notes/domain/entities"
)

// sortNotes устойчиво сортирует notes на месте.
func sortNotes(notes []entities.Note, criterion entities.SortCriterion, coll *collate.Collator) {
	switch criterion {
	case entities.SortByTitle:
		slices.SortStableFunc(notes, func(a, b entities.Note) int {
			return coll.CompareString(a.Title, b.Title)
		})
	case entities.SortByCreateDate:
		slices.SortStableFunc(notes, func(a, b entities.Note) int {
			return timestamp(b.CreateDate).Compare(timestamp(a.CreateDate))
		})
	case entities.SortByEditDate:
		slices.SortStableFunc(notes, compareEditDate)
	}
}

// compareEditDate: сначала недавно отредактированные, нередактированные в конце.
func compareEditDate(a, b entities.Note) int {
	switch {
	case a.Edited() && !b.Edited():
		return -1
	case !a.Edited() && b.Edited():
		return 1
	case !a.Edited() && !b.Edited():
		return 0
	}
	return timestamp(b.EditDate).Compare(timestamp(a.EditDate))
}

// timestamp разбирает s. Нераспознанные значения считаются нулевым временем.
func timestamp(s string) time.Time {
	t, _ := entities.ParseTimestamp(s)
	return t
}
