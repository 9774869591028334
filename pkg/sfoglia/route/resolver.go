package route

// Resolver turns a navigation request into a page descriptor through three
// stages, each tried only if the previous produced nothing:
//
//  1. Table: exact lookup of the request name. Always wins over the
//     generator, even when the generator could also answer the same name.
//  2. Generator: a single dynamic function that may match names with
//     arbitrary logic.
//  3. Fallback: must always produce a descriptor. An unresolved route is
//     absorbed here, never surfaced as an error.
type Resolver struct {
	table     *Table
	generator Generator
	fallback  Fallback
}

// NewResolver creates a resolver over table with no generator or fallback.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// SetGenerator installs the dynamic resolution stage. A later call replaces
// the previous generator.
func (r *Resolver) SetGenerator(fn Generator) {
	r.generator = fn
}

// SetFallback installs the final resolution stage. A later call replaces the
// previous fallback.
func (r *Resolver) SetFallback(fn Fallback) {
	r.fallback = fn
}

// Validate reports whether the resolver is usable. Meant to run once at
// startup, before the first resolution.
func (r *Resolver) Validate() error {
	if r.fallback == nil {
		return ErrNoFallback
	}
	return nil
}

// Resolve runs the pipeline. It never fails; callers must have validated
// that a fallback exists.
func (r *Resolver) Resolve(req Request) Descriptor {
	if fn, ok := r.table.Lookup(req.Name); ok {
		return Descriptor{
			Name:    req.Name,
			Content: fn(req.Args),
			Args:    req.Args,
		}
	}
	if r.generator != nil {
		if d, ok := r.generator(req); ok {
			return d
		}
	}
	return r.fallback(req)
}

// Knows reports whether name has an exact table entry. Used by address
// parsing to distinguish exact route names from pattern forms.
func (r *Resolver) Knows(name Name) bool {
	return r.table.Has(name)
}
