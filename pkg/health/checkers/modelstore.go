package checkers

import (
	"context"
	"time"

	"github.com/artem13815/hr/screening/pkg/modelstore"
)

// ModelStoreChecker pings the configured model store.
type ModelStoreChecker struct {
	store modelstore.Store
}

func NewModelStoreChecker(store modelstore.Store) *ModelStoreChecker {
	return &ModelStoreChecker{store: store}
}

func (c *ModelStoreChecker) Name() string { return "model store (" + c.store.Name() + ")" }

func (c *ModelStoreChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.store.Ping(ctx)
}
