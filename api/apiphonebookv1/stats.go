package apiphonebookv1

import (
	"context"

	"github.com/fulldump/phonebookdb/service"
)

func stats(ctx context.Context) (*service.Stats, error) {
	return GetServicer(ctx).Stats(), nil
}
