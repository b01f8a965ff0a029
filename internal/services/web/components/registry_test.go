package components

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func staticPanel() Panel {
	return PanelFunc(func(Input) templ.Component { return templ.NopComponent })
}

func TestNewRegistryValidatesBindings(t *testing.T) {
	t.Parallel()

	load := func(context.Context) (Panel, error) { return staticPanel(), nil }
	tests := []struct {
		name     string
		bindings []Binding
	}{
		{name: "blank id", bindings: []Binding{{ToolID: " ", Load: load}}},
		{name: "missing loader", bindings: []Binding{{ToolID: "a"}}},
		{name: "duplicate id", bindings: []Binding{{ToolID: "a", Load: load}, {ToolID: "a", Load: load}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewRegistry(tc.bindings, nil); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDefaultBindingsCoverEveryTool(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(DefaultBindings(), nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	ids := []string{
		"meta-generator", "json-formatter", "base64-tool", "url-tool", "md5-tool",
		"timestamp-converter", "qrcode-generator", "color-converter", "uuid-generator", "password-generator",
	}
	if missing := registry.Missing(ids); len(missing) != 0 {
		t.Fatalf("Missing = %v, want none", missing)
	}
	if diff := cmp.Diff([]string{"nope"}, registry.Missing([]string{"base64-tool", "nope"})); diff != "" {
		t.Fatalf("Missing mismatch (-want +got):\n%s", diff)
	}
	bindings := registry.Bindings()
	if len(bindings) != len(ids) || bindings[0].ToolID != "meta-generator" {
		t.Fatalf("Bindings order = %v", bindings)
	}
	for _, id := range ids {
		if _, err := registry.Load(context.Background(), id); err != nil {
			t.Fatalf("Load(%s): %v", id, err)
		}
	}
}

func TestLoadUnknownTool(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := registry.Resolve("missing"); ok {
		t.Fatal("Resolve(missing) ok = true")
	}
	if _, err := registry.Load(context.Background(), "missing"); !errors.Is(err, ErrNoBinding) {
		t.Fatalf("Load error = %v, want ErrNoBinding", err)
	}
}

func TestLoadMemoizesAndSharesInFlightLoad(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	release := make(chan struct{})
	registry, err := NewRegistry([]Binding{{
		ToolID: "slow",
		Load: func(context.Context) (Panel, error) {
			calls.Add(1)
			<-release
			return staticPanel(), nil
		},
	}}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := registry.Load(context.Background(), "slow"); err != nil {
				errs <- err
			}
		}()
	}
	close(release)
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Load error = %v", err)
	}
	if _, err := registry.Load(context.Background(), "slow"); err != nil {
		t.Fatalf("Load after memoize: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader calls = %d, want 1", got)
	}
}

func TestLoadFailureIsNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	registry, err := NewRegistry([]Binding{{
		ToolID: "flaky",
		Load: func(context.Context) (Panel, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("chunk missing")
			}
			return staticPanel(), nil
		},
	}}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	_, err = registry.Load(context.Background(), "flaky")
	var failure *DeferredLoadFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Load error = %v, want DeferredLoadFailure", err)
	}
	if failure.ToolID != "flaky" {
		t.Fatalf("failure tool = %q, want flaky", failure.ToolID)
	}
	if _, err := registry.Load(context.Background(), "flaky"); err != nil {
		t.Fatalf("second Load error = %v, want nil", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader calls = %d, want 2", got)
	}
}

func TestLoadRecoversLoaderPanic(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry([]Binding{{
		ToolID: "boom",
		Load:   func(context.Context) (Panel, error) { panic("bad module") },
	}}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	_, err = registry.Load(context.Background(), "boom")
	var failure *DeferredLoadFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Load error = %v, want DeferredLoadFailure", err)
	}
}

func TestLoadReturnsWhenCallerCancels(t *testing.T) {
	defer goleak.VerifyNone(t)

	release := make(chan struct{})
	registry, err := NewRegistry([]Binding{{
		ToolID: "blocked",
		Load: func(context.Context) (Panel, error) {
			<-release
			return staticPanel(), nil
		},
	}}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := registry.Load(ctx, "blocked"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load error = %v, want context.Canceled", err)
	}
	close(release)
	// The shared load still completes for later callers.
	if _, err := registry.Load(context.Background(), "blocked"); err != nil {
		t.Fatalf("Load after cancel: %v", err)
	}
}
