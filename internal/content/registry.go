package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidTool    = errors.New("content: invalid tool definition")
	ErrDuplicateTool  = errors.New("content: duplicate tool id")
	ErrUnknownRelated = errors.New("content: related tool does not exist")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validate = mustValidator()

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("content: register slug validation: %w", err)
	}
	return v, nil
}

func mustValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Registry is an immutable, ordered set of tools.
type Registry struct {
	tools    []Tool
	index    map[string]int
	checksum uint64
}

// Group is one category with its tools in registry order.
type Group struct {
	Category Category
	Tools    []Tool
}

// NewRegistry validates tools and builds a registry.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools: slices.Clone(tools),
		index: make(map[string]int, len(tools)),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	for i, t := range r.tools {
		r.index[t.ID] = i
	}
	b, err := json.Marshal(r.tools)
	if err != nil {
		return nil, fmt.Errorf("content: hash registry: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	r.checksum = h.Sum64()
	return r, nil
}

// MustRegistry is NewRegistry for static definitions.
func MustRegistry(tools ...Tool) *Registry {
	r, err := NewRegistry(tools...)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks every definition and the references between them. All
// problems are reported together.
func (r *Registry) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(r.tools))
	for _, t := range r.tools {
		if err := validate.Struct(t); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidTool, t.ID, err))
		}
		if t.Widget == WidgetConverter && (t.From == "" || t.To == "") {
			errs = append(errs, fmt.Errorf("%w %q: converter needs From and To", ErrInvalidTool, t.ID))
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateTool, t.ID))
		}
		seen[t.ID] = true
	}
	for _, t := range r.tools {
		for _, rel := range t.Related {
			if !seen[rel] || rel == t.ID {
				errs = append(errs, fmt.Errorf("%w: %q -> %q", ErrUnknownRelated, t.ID, rel))
			}
		}
	}
	return errors.Join(errs...)
}

// All returns the tools in declaration order.
func (r *Registry) All() []Tool {
	return slices.Clone(r.tools)
}

func (r *Registry) Lookup(id string) (Tool, bool) {
	i, ok := r.index[id]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Checksum identifies the tool definitions, stable across processes.
func (r *Registry) Checksum() uint64 { return r.checksum }

func (r *Registry) Len() int { return len(r.tools) }

// IDs returns tool identifiers in declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.tools))
	for i, t := range r.tools {
		ids[i] = t.ID
	}
	return ids
}

// ByCategory groups tools in Categories order. Empty categories are omitted.
func (r *Registry) ByCategory() []Group {
	groups := make([]Group, 0, len(Categories))
	for _, c := range Categories {
		var tools []Tool
		for _, t := range r.tools {
			if t.Category == c {
				tools = append(tools, t)
			}
		}
		if len(tools) > 0 {
			groups = append(groups, Group{Category: c, Tools: tools})
		}
	}
	return groups
}
