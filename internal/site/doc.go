// Package site assembles localized pages from the tool registry and the
// translation catalogs, serves them over HTTP and exports them as a static
// tree.
//
// URL layout:
//
//	/                    302 to the negotiated locale's index
//	/{lang}/             index of all tools
//	/{lang}/{tool}       tool page
//	/{tool}, /{lang}     301 to the canonical form
//	/sitemap.xml         every page with hreflang alternates
//	/robots.txt
//	/static/*            embedded stylesheet
//
// Rendered pages are cached by locale, path and catalog version, so a
// catalog reload makes every cached page stale at once.
package site
