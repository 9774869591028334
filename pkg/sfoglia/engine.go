package sfoglia

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/address"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// Engine is the navigation root: the one owner and the one mutator of the
// page stack. Pass the Engine (or a narrow interface over it) to whatever
// needs to navigate; there is deliberately no package-level instance to
// reach for.
//
// The Engine is driven from a single goroutine. Mutations run to completion
// before the next event is handled; the only suspension point is a guard
// answering Pending, which resumes when its decide callback fires.
type Engine struct {
	log      *slog.Logger
	table    *route.Table
	resolver *route.Resolver
	stack    *stack.Stack
	guards   map[any]stack.Guard
	changed  []stack.ChangedFunc
	sync     *address.Sync
}

// New creates an engine whose stack holds a single home entry produced by
// opts.Home. The home route name is registered in the table, so a later
// RegisterRoute for the same name fails with ErrDuplicateRoute.
//
// Unless opts.NoFallback is set, the built-in localized not-found fallback
// is installed; named navigation then always resolves to something.
func New(opts Options) (*Engine, error) {
	if opts.Home == nil {
		return nil, &ConfigError{Op: "new", Err: errors.New("home factory is required")}
	}
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	if opts.LogLevel != "" {
		internal.SetRawLogLevel(opts.LogLevel)
	}

	homeName := route.Name(opts.HomeRoute)
	if homeName == "" {
		homeName = "/"
	}

	table := route.NewTable()
	if err := table.Register(homeName, opts.Home); err != nil {
		return nil, &ConfigError{Op: "new", Err: err}
	}
	resolver := route.NewResolver(table)
	if !opts.NoFallback {
		resolver.SetFallback(route.NewNotFoundFallback(opts.Bundle, opts.Languages...))
	}

	e := &Engine{
		log:      internal.Logger(),
		table:    table,
		resolver: resolver,
		guards:   make(map[any]stack.Guard),
	}
	home := route.Descriptor{
		Name:    homeName,
		Content: opts.Home(route.None()),
	}
	e.stack = stack.New(home, stack.Config{
		OnChanged: e.onStackChanged,
		GuardFor:  e.guardFor,
	})

	e.log.Debug("engine created", "home", string(homeName))
	return e, nil
}

// RegisterRoute adds a named route to the table. Registering a name twice,
// including the home name, fails with an error wrapping ErrDuplicateRoute.
func (e *Engine) RegisterRoute(name string, fn route.Factory) error {
	if err := e.table.Register(route.Name(name), fn); err != nil {
		return &ConfigError{Op: "register_route", Err: err}
	}
	return nil
}

// RegisterGenerator installs the dynamic resolution stage. See
// route.Generator for precedence: the table always wins over the generator.
func (e *Engine) RegisterGenerator(fn route.Generator) {
	e.resolver.SetGenerator(fn)
}

// RegisterFallback replaces the fallback stage (the built-in not-found page
// unless Options.NoFallback was set).
func (e *Engine) RegisterFallback(fn route.Fallback) {
	e.resolver.SetFallback(fn)
}

// RegisterGuard attaches a pop guard to content. The guard applies to every
// stack entry wrapping that exact content value, looked up at pop time.
// Content must be comparable (a pointer to the page is the usual choice).
func (e *Engine) RegisterGuard(content any, g stack.Guard) {
	e.guards[content] = g
}

// OnStackChanged subscribes a render host to stack changes. The listener
// receives a fresh snapshot strictly after each applied mutation and never
// for a vetoed one. Call CurrentStack for the initial state.
func (e *Engine) OnStackChanged(fn stack.ChangedFunc) {
	e.changed = append(e.changed, fn)
}

// BindAddress wires address synchronization over a host transport and
// publishes the current top entry's address.
func (e *Engine) BindAddress(t address.Transport) {
	e.sync = address.New(t, e.resolver.Knows)
	e.sync.StackChanged(e.stack.Top())
}

// NavigateByName resolves name through the table, generator and fallback
// stages and pushes the resulting page. At most one argument value may be
// supplied; it is attached to the request as the page's payload.
//
// Fails with a ConfigError wrapping ErrNoFallback when no fallback stage is
// configured; an unknown name by itself is never an error.
func (e *Engine) NavigateByName(name string, args ...any) error {
	req := route.Request{Name: route.Name(name)}
	if len(args) > 1 {
		return &ConfigError{Op: "navigate", Err: errors.New("at most one argument value")}
	}
	if len(args) == 1 {
		req.Args = route.Args(args[0])
	}
	return e.navigate(req)
}

func (e *Engine) navigate(req route.Request) error {
	if err := e.resolver.Validate(); err != nil {
		return &ConfigError{Op: "resolve", Err: err}
	}
	d := e.resolver.Resolve(req)
	e.stack.Push(d)
	e.log.Debug("navigated", "route", string(req.Name), "depth", e.stack.Len())
	return nil
}

// NavigateToContent pushes explicit page content, bypassing resolution. The
// entry is anonymous: it has no route name and is not reflected in the
// external address.
func (e *Engine) NavigateToContent(content any) {
	e.stack.Push(route.Descriptor{Content: content})
	e.log.Debug("navigated to content", "depth", e.stack.Len())
}

// ReplaceTopWithContent swaps the top entry for explicit page content as one
// logical operation: going back afterwards lands below the replaced entry.
func (e *Engine) ReplaceTopWithContent(content any) {
	e.stack.ReplaceTop(route.Descriptor{Content: content})
	e.log.Debug("replaced top", "depth", e.stack.Len())
}

// GoBack attempts to pop the active page, passing an optional result value
// down to its guard. It reports whether the pop was applied; false with a
// nil error means the guard denied it or left it pending.
//
// Fails with ErrEmptyStack on the home page and ErrGuardBusy while another
// pop's decision is pending.
func (e *Engine) GoBack(result ...any) (bool, error) {
	var res any
	if len(result) > 0 {
		res = result[0]
	}
	return e.stack.Pop(res)
}

// GoBackUntil pops pages until pred holds for the active one, stopping at
// the home page without error. A guard denial or pending decision also stops
// the walk.
func (e *Engine) GoBackUntil(pred func(stack.Entry) bool) error {
	return e.stack.PopUntil(pred)
}

// CurrentStack returns a point-in-time snapshot of the stack, bottom first.
func (e *Engine) CurrentStack() []stack.Entry {
	return e.stack.Snapshot()
}

// HandleInboundAddress feeds an external address change (a deep link) into
// the engine: the address is parsed into a request, resolved and pushed.
// Addresses the engine itself just published are ignored.
func (e *Engine) HandleInboundAddress(addr string) error {
	if e.sync == nil {
		return &ConfigError{Op: "inbound_address", Err: errors.New("no address transport bound")}
	}
	req, ok := e.sync.Inbound(addr)
	if !ok {
		return nil
	}
	return e.navigate(req)
}

func (e *Engine) onStackChanged(entries []stack.Entry) {
	for _, fn := range e.changed {
		fn(entries)
	}
	if e.sync != nil {
		e.sync.StackChanged(entries[len(entries)-1])
	}
}

func (e *Engine) guardFor(entry stack.Entry) stack.Guard {
	c := entry.Descriptor.Content
	if len(e.guards) == 0 || c == nil {
		return nil
	}
	// Non-comparable content can never have been registered as a map key.
	if !reflect.TypeOf(c).Comparable() {
		return nil
	}
	return e.guards[c]
}
