package lifecycle_test

import (
	"testing"

	"github.com/gnames/cbstats/internal/iodb"
	"github.com/gnames/cbstats/internal/ioschema"
	"github.com/gnames/cbstats/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestSchemaManagerContract ensures that the ioschema implementation
// satisfies the lifecycle.SchemaManager interface.
func TestSchemaManagerContract(t *testing.T) {
	var m lifecycle.SchemaManager = ioschema.NewManager(iodb.NewPgxOperator())
	assert.NotNil(t, m)
}
