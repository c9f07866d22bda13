package apiphonebookv1

import (
	"context"

	"github.com/fulldump/phonebookdb/phonebook"
)

// lastDeleted shows the batch removed by the most recent delete, so it can be
// added back by hand.
func lastDeleted(ctx context.Context) ([]phonebook.Entry, error) {
	return GetServicer(ctx).LastDeleted(), nil
}
