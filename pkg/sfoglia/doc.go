// Package sfoglia provides a navigation stack with named-route resolution,
// back-navigation guards and optional external address synchronization.
//
// The engine decides what the current ordered stack of logical pages is and
// how a navigation request resolves to a page. It never renders anything: a
// render host subscribes to stack changes and mounts/unmounts whatever the
// snapshot says, calling back into the engine through its public operations.
//
// # Basic Usage
//
//	eng, err := sfoglia.New(sfoglia.Options{
//	    HomeRoute: "/",
//	    Home: func(route.Arguments) any {
//	        return &HomePage{}
//	    },
//	})
//	if err != nil {
//	    // configuration problem, not recoverable
//	}
//
//	// Register named routes. Duplicate names fail loudly at registration.
//	eng.RegisterRoute("/settings", func(route.Arguments) any {
//	    return &SettingsPage{}
//	})
//
//	// A generator answers names the table does not, with arbitrary logic.
//	// The table always wins when both could answer.
//	eng.RegisterGenerator(func(req route.Request) (route.Descriptor, bool) {
//	    if game, ok := strings.CutPrefix(string(req.Name), "/game/"); ok {
//	        return route.Descriptor{
//	            Name:    req.Name,
//	            Content: &GamePage{ID: game},
//	            Args:    req.Args,
//	        }, true
//	    }
//	    return route.Descriptor{}, false
//	})
//
//	// Hook up the render host, then navigate.
//	eng.OnStackChanged(func(entries []stack.Entry) { render(entries) })
//	eng.NavigateByName("/settings")
//	eng.GoBack()
//
// Unresolved names are not errors: they reach the fallback stage, which by
// default produces a localized route.NotFoundContent page echoing the
// request.
//
// # Back Guards
//
// A page can veto or defer its own removal. The guard answers Allow, Deny,
// or Pending; a Pending guard hands the decision to an out-of-band
// confirmation (a dialog shown by the render host) and resumes the pop when
// decide is called. While pending, further pops fail with ErrGuardBusy.
//
//	editor := &EditorPage{}
//	eng.RegisterGuard(editor, func(top stack.Entry, result any, decide func(bool)) stack.Decision {
//	    if !editor.Dirty() {
//	        return stack.Allow
//	    }
//	    showDiscardDialog(decide) // decide(true) discards and pops
//	    return stack.Pending
//	})
//
// # Address Synchronization
//
// For addressable targets (a browser URL bar, a deep-link channel), bind a
// transport and the engine mirrors the active route name to it, appending a
// string argument as a trailing path segment. Inbound addresses flow the
// other way: parsed into a request, resolved and pushed. Anonymous pushes
// (NavigateToContent) leave the address untouched.
//
//	eng.BindAddress(transport)
//	eng.HandleInboundAddress("/game/portal") // deep link entry
package sfoglia
