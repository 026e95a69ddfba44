package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
)

// Client-facing messages for store failures, shared by both record kinds.
const (
	msgFetchFailed  = "Error fetching data"
	msgInsertFailed = "Error inserting data"
	msgUpdateFailed = "Error updating data"
	msgDeleteFailed = "Error deleting data"
)

// recorder times a store call and converts its error into an application error.
type recorder struct {
	logger   *zap.Logger
	metrics  *MetricsService
	notFound string
}

func (r recorder) run(ctx context.Context, label, failMessage string, key zap.Field, call func(context.Context) error) error {
	start := time.Now()
	err := call(ctx)
	notFound := errors.Is(err, sql.ErrNoRows)
	if r.metrics != nil {
		r.metrics.ObserveDBQuery(label, time.Since(start), err != nil && !notFound)
	}

	switch {
	case err == nil:
		return nil
	case notFound && r.notFound != "":
		return appErrors.NotFound(r.notFound)
	default:
		r.logger.Error("store operation failed", zap.String("op", label), key, zap.Error(err))
		return appErrors.Internal(err, failMessage)
	}
}

func newRecorder(logger *zap.Logger, metrics *MetricsService, notFound string) recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return recorder{logger: logger, metrics: metrics, notFound: notFound}
}
