package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/phonebookdb/api/apiphonebookv1"
	"github.com/fulldump/phonebookdb/database"
	"github.com/fulldump/phonebookdb/phonebook"
)

var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening {
				box.SetError(ctx, fmt.Errorf("%w: opening", ErrUnavailable))
				return
			}
			if status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: closing", ErrUnavailable))
				return
			}
			next(ctx)
		}
	}
}

// errorStatus maps phonebook errors to a status code and a human description.
// Order matters: a snapshot over capacity is both ErrParse and ErrFull.
var errorStatus = []struct {
	err         error
	status      int
	description string
}{
	{phonebook.ErrOutOfRange, http.StatusBadRequest, "room must have up to 4 digits and phone up to 8 digits, both greater than zero"},
	{phonebook.ErrInvalidCharacter, http.StatusBadRequest, "only decimal digits are allowed"},
	{phonebook.ErrBadDirection, http.StatusBadRequest, "sort direction must be ascending or descending"},
	{apiphonebookv1.ErrBadFind, http.StatusBadRequest, "find needs a room, a phone or a filter"},
	{phonebook.ErrParse, http.StatusUnprocessableEntity, "snapshot is malformed, database was not modified"},
	{phonebook.ErrFull, http.StatusInsufficientStorage, "database is full"},
	{phonebook.ErrNotFound, http.StatusNotFound, "no entry matches"},
	{phonebook.ErrEmptyStore, http.StatusNotFound, "database is empty"},
	{phonebook.ErrIO, http.StatusInternalServerError, "snapshot could not be read or written"},
}

func writePrettyError(w http.ResponseWriter, status int, err error, description string) {
	w.WriteHeader(status)
	PrettyError{
		Message:     err.Error(),
		Description: description,
	}.MarshalTo(w)
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if err == ErrUnauthorized {
			writePrettyError(w, http.StatusUnauthorized, err, "user is not authenticated")
			return
		}

		if errors.Is(err, ErrUnavailable) {
			writePrettyError(w, http.StatusServiceUnavailable, err, "database is "+database.StatusOpening+" or "+database.StatusClosing+", try again later")
			return
		}

		if err == box.ErrResourceNotFound {
			writePrettyError(w, http.StatusNotFound, err, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writePrettyError(w, http.StatusMethodNotAllowed, err, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if _, ok := err.(*json.SyntaxError); ok {
			writePrettyError(w, http.StatusBadRequest, err, "Malformed JSON")
			return
		}

		for _, e := range errorStatus {
			if errors.Is(err, e.err) {
				writePrettyError(w, e.status, err, e.description)
				return
			}
		}

		writePrettyError(w, http.StatusInternalServerError, err, "Unexpected error")
	}
}
