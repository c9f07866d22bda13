package apiphonebookv1

import (
	"context"
	"net/http"
)

type sortRequest struct {
	Direction string `json:"direction"`
}

func sortEntries(ctx context.Context, w http.ResponseWriter, input *sortRequest) error {

	s := GetServicer(ctx)

	if input.Direction == "" {
		input.Direction = "asc"
	}

	err := s.Sort(input.Direction)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
