// Package handler turns functions that return a Response into
// http.HandlerFunc values with centralized error handling.
//
// A handler either returns a Response, which renders itself, or an error
// response built with Fail. Errors carrying an HTTPError keep their status
// and catalog key; every other error becomes a 500. The error handler
// configured with WithErrorHandler decides how errors are shown, normally
// as a localized page.
//
//	h := handler.Wrap(func(ctx handler.Context) handler.Response {
//		page, err := pages.Tool(lang, id)
//		if err != nil {
//			return handler.Fail(err)
//		}
//		return handler.Templ(page)
//	}, handler.WithErrorHandler(errorHandler))
package handler
