// Package views renders the site's HTML as templ components.
//
// Every page is a body component wrapped by Layout, which owns the document
// chrome: head and SEO tags, navigation, language switcher and footer. Body
// components receive fully localized values; nothing in this package looks
// up translations or touches request state.
//
// Interactive tools only emit markup. Each widget root carries data-tool,
// data-mode, data-from and data-to attributes that the client script for the
// tool binds to.
package views
