package apiphonebookv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/phonebookdb/service"
)

func BuildV1Phonebook(v1 *box.R, s service.Servicer) *box.R {

	entries := v1.Resource("/entries").
		WithActions(
			box.Get(listEntries).WithName("listEntries"),
			box.Post(addEntry).WithName("addEntry"),
			box.ActionPost(deleteEntries).WithName("delete"),
			box.ActionPost(find).WithName("find"),
			box.ActionPost(sortEntries).WithName("sort"),
			box.Action(lastDeleted).WithName("lastDeleted"),
		)

	v1.Resource("/stats").
		WithActions(
			box.Get(stats).WithName("stats"),
		)

	v1.Resource("/snapshot").
		WithActions(
			box.ActionPost(persist).WithName("persist"),
			box.ActionPost(load).WithName("load"),
		)

	return entries
}
