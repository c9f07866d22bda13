package apiphonebookv1

import (
	"context"
	"net/http"

	"github.com/fulldump/phonebookdb/service"
)

func addEntry(ctx context.Context, w http.ResponseWriter, input *entryRequest) (*service.AddedEntry, error) {

	s := GetServicer(ctx)

	entry, err := s.Add(string(input.Room), string(input.Phone))
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return entry, nil
}
