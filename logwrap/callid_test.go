package logwrap

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ContextWithCallID_GeneratesAValidID(t *testing.T) {
	ctx := ContextWithCallID(context.Background())

	id, ok := CallIDFromContext(ctx)

	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func Test_ContextWithCallID_KeepsAnExistingID(t *testing.T) {
	outer := ContextWithCallID(context.Background())
	outerID, _ := CallIDFromContext(outer)

	inner := ContextWithCallID(outer)
	innerID, _ := CallIDFromContext(inner)

	assert.Equal(t, outerID, innerID, "nested layers share the outermost layer's ID")
}

func Test_CallIDFromContext_AbsentByDefault(t *testing.T) {
	_, ok := CallIDFromContext(context.Background())

	assert.False(t, ok)
}
