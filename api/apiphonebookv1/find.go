package apiphonebookv1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/phonebookdb/phonebook"
)

type findRequest struct {
	Room   *Digits                `json:"room,omitempty"`
	Phone  *Digits                `json:"phone,omitempty"`
	Filter map[string]interface{} `json:"filter,omitempty"`
}

var ErrBadFind = errors.New("one of 'room', 'phone' or 'filter' is required")

func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	input := &findRequest{}
	err := json2.UnmarshalRead(r.Body, input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadFind, err)
	}

	s := GetServicer(ctx)

	var entries []phonebook.Entry
	switch {
	case input.Phone != nil:
		entries, err = s.FindByPhone(string(*input.Phone))
	case input.Room != nil:
		entries, err = s.FindByRoom(string(*input.Room))
	case len(input.Filter) > 0:
		entries, err = s.Match(input.Filter)
	default:
		err = ErrBadFind
	}
	if err != nil {
		return err
	}

	return writeEntries(w, entries)
}
