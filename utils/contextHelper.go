package utils

import (
	"context"

	"github.com/peiplay/console-core/appctx"
)

func GetOperatorIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyOperatorId)
}

func GetOperatorNameFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyOperatorName)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, appctx.ContextKeyCorrelationId)
}

func SetOperatorIdInContext(ctx context.Context, operatorId string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyOperatorId, operatorId)
}

func SetOperatorNameInContext(ctx context.Context, operatorName string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyOperatorName, operatorName)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, appctx.ContextKeyCorrelationId, correlationId)
}
