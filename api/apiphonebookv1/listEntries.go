package apiphonebookv1

import (
	"context"
	"net/http"
)

func listEntries(ctx context.Context, w http.ResponseWriter) error {

	s := GetServicer(ctx)

	entries, err := s.ListAll()
	if err != nil {
		return err
	}

	return writeEntries(w, entries)
}
