package ioschema_test

import (
	"context"
	"testing"

	"github.com/gnames/cbstats/internal/iodb"
	"github.com/gnames/cbstats/internal/ioschema"
	"github.com/gnames/cbstats/internal/iotesting"
	"github.com/gnames/cbstats/pkg/errcode"
	"github.com/gnames/cbstats/pkg/schema"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConnected(t *testing.T) {
	m := ioschema.NewManager(iodb.NewPgxOperator())
	for _, err := range []error{
		m.Create(context.Background(), false),
		m.Migrate(context.Background()),
	} {
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	}
}

func TestCreateAndMigrate(t *testing.T) {
	op := iodb.NewPgxOperator()
	iotesting.Connect(t, op)
	ctx := context.Background()
	m := ioschema.NewManager(op)

	require.NoError(t, m.Create(ctx, true))
	for _, table := range schema.TableNames() {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	// idempotent
	require.NoError(t, m.Create(ctx, false))
	require.NoError(t, m.Migrate(ctx))
}
