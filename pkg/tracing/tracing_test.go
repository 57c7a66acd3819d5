package tracing_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/circulation-service/pkg/tracing"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), tracing.Config{})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInit_Exporter(t *testing.T) {
	ctx := context.Background()
	shutdown, err := tracing.Init(ctx, tracing.Config{
		Endpoint:    "127.0.0.1:4318",
		Insecure:    true,
		ServiceName: "circulation-test",
		SampleRatio: 1,
	})
	require.NoError(t, err)
	// nothing was recorded, so shutdown has nothing to flush
	require.NoError(t, shutdown(ctx))
}
