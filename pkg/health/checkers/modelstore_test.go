package checkers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/hr/screening/pkg/modelstore"
)

func TestModelStoreChecker(t *testing.T) {
	store := modelstore.NewFileStore(filepath.Join(t.TempDir(), "models", "m.json"))
	c := NewModelStoreChecker(store)
	assert.Equal(t, "model store (file)", c.Name())
	assert.NoError(t, c.Check(context.Background()))
}
