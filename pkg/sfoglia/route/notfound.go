package route

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NotFoundContent is the page content produced by the built-in fallback. It
// echoes the unresolved request so an error page can show what was asked
// for.
type NotFoundContent struct {
	Name    Name
	Args    Arguments
	Message string
}

var notFoundMessage = &i18n.Message{
	ID:          "RouteNotFound",
	Description: "Shown when a navigation request matches no registered route",
	Other:       "No page is registered for {{.Route}}.",
}

// NewNotFoundFallback returns a Fallback producing NotFoundContent with a
// localized message. A nil bundle uses the built-in English message; hosts
// with translations pass their own bundle plus the user's language
// preferences.
func NewNotFoundFallback(bundle *i18n.Bundle, langs ...string) Fallback {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
	}
	localizer := i18n.NewLocalizer(bundle, langs...)
	return func(req Request) Descriptor {
		msg := localizer.MustLocalize(&i18n.LocalizeConfig{
			DefaultMessage: notFoundMessage,
			TemplateData:   map[string]any{"Route": string(req.Name)},
		})
		return Descriptor{
			Name: req.Name,
			Content: NotFoundContent{
				Name:    req.Name,
				Args:    req.Args,
				Message: msg,
			},
			Args: req.Args,
		}
	}
}
