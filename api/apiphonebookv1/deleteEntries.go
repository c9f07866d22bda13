package apiphonebookv1

import (
	"context"

	"github.com/fulldump/phonebookdb/service"
)

func deleteEntries(ctx context.Context, input *entryRequest) (*service.Deleted, error) {

	s := GetServicer(ctx)

	return s.Delete(string(input.Room), string(input.Phone))
}
