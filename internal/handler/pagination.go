package handler

import (
	"errors"
	"strconv"
)

const tasksPerPage = 10

var errInvalidPage = errors.New("invalid page")

// Page is one window of a paginated list. Page 1 always exists, even for an
// empty list.
type Page struct {
	Number   int
	NumPages int
	PerPage  int
}

func paginate(raw string, total int64, perPage int) (Page, error) {
	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}

	number := 1
	switch raw {
	case "":
	case "last":
		number = numPages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > numPages {
			return Page{}, errInvalidPage
		}
		number = n
	}

	return Page{Number: number, NumPages: numPages, PerPage: perPage}, nil
}

func (p Page) Offset() int         { return (p.Number - 1) * p.PerPage }
func (p Page) HasPrevious() bool   { return p.Number > 1 }
func (p Page) HasNext() bool       { return p.Number < p.NumPages }
func (p Page) PreviousNumber() int { return p.Number - 1 }
func (p Page) NextNumber() int     { return p.Number + 1 }
