package entities

import (
	"errors"
	"fmt"
)

// ErrUnknownSortCriterion возвращается для неподдерживаемого ключа сортировки.
var ErrUnknownSortCriterion = errors.New("unknown sort criterion")

// SortCriterion ключ сортировки списка заметок.
type SortCriterion string

const (
	SortByTitle      SortCriterion = "title"
	SortByCreateDate SortCriterion = "createDate"
	SortByEditDate   SortCriterion = "editDate"
)

// SortCriteria поддерживаемые ключи в порядке отображения.
var SortCriteria = []SortCriterion{SortByTitle, SortByCreateDate, SortByEditDate}

// ParseSortCriterion проверяет s.
func ParseSortCriterion(s string) (SortCriterion, error) {
	for _, c := range SortCriteria {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortCriterion, s)
}
