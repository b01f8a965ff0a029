// Package components binds tool ids to their deferred panel loaders and
// memoizes the loaded panels.
package components

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/toolbox/internal/platform/i18n"
	"github.com/louisbranch/toolbox/internal/services/web/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoBinding reports a tool id with no registered panel.
var ErrNoBinding = errors.New("tool has no panel binding")

// Input is the request state a panel renders from.
type Input struct {
	Method string
	Form   url.Values
	Locale i18n.Locale
	Loc    templates.Localizer
	// Action is the URL the panel form posts to.
	Action string
	// Now defaults to time.Now.
	Now func() time.Time
	// Random defaults to crypto/rand.
	Random io.Reader
}

// Submitted reports whether the panel form was posted.
func (in Input) Submitted() bool {
	return in.Method == http.MethodPost
}

// Value returns the trimmed form value for name.
func (in Input) Value(name string) string {
	if in.Form == nil {
		return ""
	}
	return strings.TrimSpace(in.Form.Get(name))
}

// RawValue returns the untrimmed form value for name.
func (in Input) RawValue(name string) string {
	if in.Form == nil {
		return ""
	}
	return in.Form.Get(name)
}

// Checked reports whether a checkbox was posted checked.
func (in Input) Checked(name string) bool {
	return in.Value(name) == "on"
}

// T translates key in the request locale.
func (in Input) T(key string, args ...any) string {
	return templates.T(in.Loc, key, args...)
}

func (in Input) now() time.Time {
	if in.Now != nil {
		return in.Now()
	}
	return time.Now()
}

// Panel renders one tool body.
type Panel interface {
	Render(in Input) templ.Component
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(in Input) templ.Component

// Render calls f.
func (f PanelFunc) Render(in Input) templ.Component {
	return f(in)
}

// Loader builds a panel on first use.
type Loader func(ctx context.Context) (Panel, error)

// Binding ties a tool id to its panel loader.
type Binding struct {
	ToolID         string
	Load           Loader
	DefaultEnabled bool
	Order          int
}

// DeferredLoadFailure reports a panel loader that failed.
type DeferredLoadFailure struct {
	ToolID string
	Err    error
}

func (e *DeferredLoadFailure) Error() string {
	return fmt.Sprintf("load panel %s: %v", e.ToolID, e.Err)
}

func (e *DeferredLoadFailure) Unwrap() error {
	return e.Err
}

// Registry resolves bindings and memoizes loaded panels. A failed load is not
// remembered; the next Load runs the loader again.
type Registry struct {
	bindings map[string]Binding
	logger   *zap.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	panels map[string]Panel
}

// NewRegistry validates bindings: ids must be unique and non-empty and every
// binding needs a loader.
func NewRegistry(bindings []Binding, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	index := make(map[string]Binding, len(bindings))
	var errs []error
	for _, binding := range bindings {
		id := strings.TrimSpace(binding.ToolID)
		switch {
		case id == "":
			errs = append(errs, errors.New("binding tool id is required"))
			continue
		case binding.Load == nil:
			errs = append(errs, fmt.Errorf("binding %s: loader is required", id))
			continue
		}
		if _, exists := index[id]; exists {
			errs = append(errs, fmt.Errorf("binding %s: duplicate tool id", id))
			continue
		}
		binding.ToolID = id
		index[id] = binding
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("component registry: %w", err)
	}
	return &Registry{
		bindings: index,
		logger:   logger,
		panels:   make(map[string]Panel),
	}, nil
}

// Resolve returns the binding for toolID.
func (r *Registry) Resolve(toolID string) (Binding, bool) {
	if r == nil {
		return Binding{}, false
	}
	binding, ok := r.bindings[toolID]
	return binding, ok
}

// Bindings lists bindings by Order, then tool id.
func (r *Registry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindings))
	for _, binding := range r.bindings {
		out = append(out, binding)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ToolID < out[j].ToolID
	})
	return out
}

// Missing returns the ids in toolIDs that have no binding, in input order.
func (r *Registry) Missing(toolIDs []string) []string {
	missing := []string{}
	for _, id := range toolIDs {
		if _, ok := r.Resolve(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Load returns the panel for toolID, running its loader on first use.
// Concurrent first calls share one loader run. Loader failures, including
// panics, are returned as *DeferredLoadFailure.
func (r *Registry) Load(ctx context.Context, toolID string) (Panel, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	binding, ok := r.Resolve(toolID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoBinding, toolID)
	}
	if panel, ok := r.cached(toolID); ok {
		return panel, nil
	}
	// The shared load outlives any single caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	result := r.group.DoChan(toolID, func() (any, error) {
		if panel, ok := r.cached(toolID); ok {
			return panel, nil
		}
		panel, err := runLoader(loadCtx, binding.Load)
		if err != nil {
			r.logger.Warn("panel load failed", zap.String("tool_id", toolID), zap.Error(err))
			return nil, &DeferredLoadFailure{ToolID: toolID, Err: err}
		}
		r.mu.Lock()
		r.panels[toolID] = panel
		r.mu.Unlock()
		return panel, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Panel), nil
	}
}

func (r *Registry) cached(toolID string) (Panel, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	panel, ok := r.panels[toolID]
	return panel, ok
}

func runLoader(ctx context.Context, load Loader) (panel Panel, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panel = nil
			err = fmt.Errorf("loader panicked: %v", recovered)
		}
	}()
	panel, err = load(ctx)
	if err == nil && panel == nil {
		err = errors.New("loader returned no panel")
	}
	return panel, err
}
