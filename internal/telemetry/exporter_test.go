package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edgedemo/internal/edge"
	"edgedemo/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	e, err := New(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, e)

	// Nil exporter is a no-op.
	e.RecordAction(context.Background(), "Home", state.ToggleLargeTitle{}, state.Defaults())
	assert.NoError(t, e.Shutdown(context.Background()))
}

func TestListener_RecordsSpan(t *testing.T) {
	mem := tracetest.NewInMemoryExporter()
	e := NewWithSpanExporter(mem, "test")

	s := state.NewStore(state.Defaults())
	s.Subscribe(e.Listener("Alerts"))
	s.Dispatch(state.SetTopStyle{Style: edge.Hard})

	spans := mem.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "options.set_top_style", spans[0].Name)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "Alerts", attrs["edgedemo.tab"].AsString())
	assert.Equal(t, "hard", attrs["edgedemo.top"].AsString())
	assert.Equal(t, "hard", attrs["edgedemo.bottom"].AsString())
	assert.Equal(t, int64(40), attrs["edgedemo.cards"].AsInt64())

	require.NoError(t, e.Shutdown(context.Background()))
}

func TestNew_DispatchDoesNotWaitForCollector(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", srv.URL)
	e, err := New(context.Background(), "test")
	require.NoError(t, err)
	require.NotNil(t, e)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_ = e.Shutdown(ctx)
	})

	s := state.NewStore(state.Defaults())
	s.Subscribe(e.Listener("Home"))

	start := time.Now()
	for range 5 {
		s.Dispatch(state.ToggleLargeTitle{})
	}
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}
