package service

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
)

var domainErrors = []error{
	errs.ErrNotFound,
	errs.ErrConflict,
	errs.ErrUnknownStatus,
	errs.ErrStatusConfig,
	errs.ErrInvalidPage,
}

// storeErr passes domain errors through and hides every other failure behind
// errs.ErrPersistence, logging the cause.
func storeErr(log *zap.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return errors.WithMessage(err, op)
		}
	}
	log.Error(op, zap.Error(err))
	return errors.Wrap(errs.ErrPersistence, op)
}
