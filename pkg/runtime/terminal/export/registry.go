package export

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReporterFactory creates a Reporter writing to w
type ReporterFactory func(w io.Writer) Reporter

// Registry manages report format factories
type Registry interface {
	// Register adds a new format factory
	Register(format string, factory ReporterFactory) error
	// Create instantiates a reporter for the specified format
	Create(format string, w io.Writer) (Reporter, error)
	// ListFormats returns the registered formats in sorted order
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ReporterFactory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]ReporterFactory),
	}
}

// NewDefaultRegistry registers the text and json formats.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(FormatText, func(w io.Writer) Reporter { return NewTableReporter(w) })
	_ = r.Register(FormatJSON, func(w io.Writer) Reporter { return NewJSONReporter(w) })
	return r
}

func (r *registry) Register(format string, factory ReporterFactory) error {
	if format == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.factories[format] = factory
	return nil
}

func (r *registry) Create(format string, w io.Writer) (Reporter, error) {
	r.mu.RLock()
	factory, exists := r.factories[format]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("format %q is not registered", format)
	}

	return factory(w), nil
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
