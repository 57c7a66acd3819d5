package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
)

type statusSource interface {
	StatusByName(ctx context.Context, name string) (model.Status, error)
}

// StatusCatalog resolves status names to stored taxonomy rows and caches hits.
type StatusCatalog struct {
	src   statusSource
	cache *cache.Cache
}

func NewStatusCatalog(src statusSource, ttl time.Duration) *StatusCatalog {
	return &StatusCatalog{
		src:   src,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Resolve fails with errs.ErrUnknownStatus when name is not registered.
func (c *StatusCatalog) Resolve(ctx context.Context, name model.StatusName) (model.Status, error) {
	if v, ok := c.cache.Get(string(name)); ok {
		return v.(model.Status), nil
	}
	st, err := c.src.StatusByName(ctx, string(name))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Status{}, errors.Wrapf(errs.ErrUnknownStatus, "%q", name)
		}
		return model.Status{}, err
	}
	c.cache.SetDefault(string(name), st)
	return st, nil
}
