package apiphonebookv1

import (
	"context"

	"github.com/fulldump/phonebookdb/service"
)

func persist(ctx context.Context) (*service.Stats, error) {

	s := GetServicer(ctx)

	err := s.Persist()
	if err != nil {
		return nil, err
	}

	return s.Stats(), nil
}

func load(ctx context.Context) (*service.Stats, error) {

	s := GetServicer(ctx)

	err := s.Load()
	if err != nil {
		return nil, err
	}

	return s.Stats(), nil
}
