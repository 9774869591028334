// Package route defines navigation targets and the resolution pipeline that
// turns a named request into a page descriptor.
package route

// Name identifies a navigation target. Names are opaque strings, typically
// URI-shaped ("/settings", "/game/detail"), compared by exact match. The
// table stage does no pattern matching; anything fancier belongs in the
// generator stage.
type Name string

// Request is a navigation request awaiting resolution.
type Request struct {
	Name Name
	Args Arguments
}

// Descriptor is a resolved page: what the stack actually holds. Name is
// empty for anonymous navigation (explicit-content pushes that bypass
// resolution entirely).
type Descriptor struct {
	Name    Name
	Content any
	Args    Arguments
}

// Factory produces page content for a registered route. The arguments are
// the ones carried by the request; ownership passes to the produced page.
type Factory func(args Arguments) any

// Generator is the dynamic resolution stage. It may inspect the request name
// with arbitrary logic (substring parsing, pattern matching) and either
// produce a descriptor or report no match.
type Generator func(req Request) (Descriptor, bool)

// Fallback is the final resolution stage. Unlike a Generator it must always
// produce a descriptor; an unresolved route is not an error, it is absorbed
// here (commonly as a "not found" page echoing the request).
type Fallback func(req Request) Descriptor
