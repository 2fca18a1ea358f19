package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
	"github.com/marilyndevx/FinFusion-V1/internal/receipt"
)

// toConnectError maps domain errors onto Connect codes. Anything unrecognized
// is reported as internal.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, receipt.ErrEmptyImage),
		errors.Is(err, receipt.ErrImageTooLarge),
		errors.Is(err, receipt.ErrNotAnImage):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
