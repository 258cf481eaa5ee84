package site

// StylesheetPath is the URL of the embedded stylesheet.
const StylesheetPath = "/static/site.css"

// IndexPath is the index URL for lang. Index URLs end with a slash.
func IndexPath(lang string) string {
	return "/" + lang + "/"
}

// ToolPath is the URL of a tool page. Tool URLs have no trailing slash.
func ToolPath(lang, id string) string {
	return "/" + lang + "/" + id
}
