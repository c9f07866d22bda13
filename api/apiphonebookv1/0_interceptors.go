package apiphonebookv1

import (
	"context"

	"github.com/fulldump/phonebookdb/service"
)

const ContextServicerKey = "5c1d0b52-8a57-4c0e-bd6e-7d3f1a9e0c21"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
