package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetrics(t *testing.T) {
	quiet := WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ok := catalogLoads.WithLabelValues(SourceEmbedded, "ok")
	bad := catalogLoads.WithLabelValues(SourceInline, "error")
	okBefore, badBefore := testutil.ToFloat64(ok), testutil.ToFloat64(bad)

	_, err := Default(context.Background(), quiet)
	require.NoError(t, err)
	_, err = Parse(context.Background(), []byte("version: 3"), quiet)
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(bad))
	assert.Equal(t, float64(65), testutil.ToFloat64(catalogEdges))
}
