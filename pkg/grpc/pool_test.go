package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestPool_ReusesConnection(t *testing.T) {
	p := NewPool(WithDefaultCallOptions(grpc.WaitForReady(true)))
	defer p.Close()

	a, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	b, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := p.GetConnection("localhost:50052")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestPool_ReplacesClosedConnection(t *testing.T) {
	p := NewPool()
	defer p.Close()

	a, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestPool_Close(t *testing.T) {
	p := NewPool()
	_, err := p.GetConnection("localhost:50051")
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, ok := p.load("localhost:50051")
	assert.False(t, ok)
}
