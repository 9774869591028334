// Package address mirrors the active route to an externally visible address
// and parses inbound addresses (deep links) back into navigation requests.
package address

import (
	"net/url"
	"strings"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// Transport is the host-provided accessor for the external address — a
// browser URL bar, a deep-link channel, whatever the platform exposes. The
// engine never owns the address, it only reads and writes it through this.
type Transport interface {
	Read() string
	Write(addr string)
}

// Sync keeps the external address and the navigation stack consistent in
// both directions without feeding back into itself: it remembers the last
// address it saw, skips writes that would not change it, and suppresses
// inbound addresses it just wrote.
type Sync struct {
	transport Transport
	knows     func(route.Name) bool
	last      string
}

// New creates a Sync over transport. knows reports whether a name is an
// exact registered route, letting Parse prefer exact names over the pattern
// form; nil means no exact names.
func New(transport Transport, knows func(route.Name) bool) *Sync {
	return &Sync{
		transport: transport,
		knows:     knows,
	}
}

// StackChanged recomputes the external address from the new top entry.
// Anonymous entries (no route name) leave the previous address in place, and
// an address equal to the last one written is not written again.
func (s *Sync) StackChanged(top stack.Entry) {
	name := top.Descriptor.Name
	if name == "" {
		return
	}
	addr := Compose(name, top.Descriptor.Args)
	if addr == s.last {
		return
	}
	s.last = addr
	s.transport.Write(addr)
}

// Inbound parses an external address into a resolution request. It reports
// false when the address is the one Sync itself produced last, which breaks
// address/stack feedback loops; parsing itself is deterministic (see Parse).
func (s *Sync) Inbound(addr string) (route.Request, bool) {
	if addr == s.last {
		return route.Request{}, false
	}
	s.last = addr
	return Parse(addr, s.knows), true
}

// Compose builds the external form of a route: the name itself, with a
// string argument appended as one trailing path segment. Compose and Parse
// round-trip: Parse(Compose(name, args)) yields the same request as long as
// the composed address is not itself a registered name.
func Compose(name route.Name, args route.Arguments) string {
	addr := string(name)
	if arg, err := args.String(); err == nil && arg != "" {
		addr = strings.TrimSuffix(addr, "/") + "/" + url.PathEscape(arg)
	}
	return addr
}

// Parse turns an address into a request. An exact registered name matches
// as-is with no arguments; otherwise the trailing path segment is split off
// as a single string argument, mirroring what a generator stage typically
// matches.
func Parse(addr string, knows func(route.Name) bool) route.Request {
	p := addr
	if u, err := url.Parse(addr); err == nil && u.Path != "" {
		p = u.Path
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	if knows != nil && knows(route.Name(p)) {
		return route.Request{Name: route.Name(p)}
	}
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return route.Request{Name: route.Name(p)}
	}
	head, tail := p[:i], p[i+1:]
	if dec, err := url.PathUnescape(tail); err == nil {
		tail = dec
	}
	return route.Request{
		Name: route.Name(head),
		Args: route.Args(tail),
	}
}
