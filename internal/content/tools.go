package content

// Tool identifiers.
const (
	Base64Encode    = "base64-encode"
	Base64Decode    = "base64-decode"
	JSONFormatter   = "json-formatter"
	JSONToCSV       = "json-to-csv"
	CSVToJSON       = "csv-to-json"
	JSONToYAML      = "json-to-yaml"
	JSONToXML       = "json-to-xml"
	QRCodeGenerator = "qr-code-generator"
	RegexTester     = "regex-tester"
	HTMLEntities    = "html-entities"
	EmojiPicker     = "emoji-picker"
	StringEscape    = "string-escape"
)

var (
	rfc4648      = Resource{Title: "RFC 4648: The Base16, Base32, and Base64 Data Encodings", URL: "https://www.rfc-editor.org/rfc/rfc4648"}
	mdnB64       = Resource{Title: "MDN: Base64", URL: "https://developer.mozilla.org/en-US/docs/Glossary/Base64"}
	rfc8259      = Resource{Title: "RFC 8259: The JavaScript Object Notation (JSON) Data Interchange Format", URL: "https://www.rfc-editor.org/rfc/rfc8259"}
	jsonOrg      = Resource{Title: "Introducing JSON", URL: "https://www.json.org/json-en.html"}
	rfc4180      = Resource{Title: "RFC 4180: Common Format and MIME Type for CSV Files", URL: "https://www.rfc-editor.org/rfc/rfc4180"}
	yaml12       = Resource{Title: "YAML Ain't Markup Language 1.2.2", URL: "https://yaml.org/spec/1.2.2/"}
	xml10        = Resource{Title: "Extensible Markup Language (XML) 1.0", URL: "https://www.w3.org/TR/xml/"}
	iso18004     = Resource{Title: "ISO/IEC 18004:2024 QR Code", URL: "https://www.iso.org/standard/83389.html"}
	mdnRegex     = Resource{Title: "MDN: Regular expressions", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide/Regular_expressions"}
	ecmaRegex    = Resource{Title: "ECMAScript RegExp objects", URL: "https://tc39.es/ecma262/#sec-regexp-regular-expression-objects"}
	whatwgRefs   = Resource{Title: "HTML Standard: Named character references", URL: "https://html.spec.whatwg.org/multipage/named-characters.html"}
	unicodeEmoji = Resource{Title: "Unicode Emoji Charts", URL: "https://unicode.org/emoji/charts/full-emoji-list.html"}
	uts51        = Resource{Title: "UTS #51: Unicode Emoji", URL: "https://www.unicode.org/reports/tr51/"}
	mdnEsc       = Resource{Title: "MDN: String escape sequences", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/String#escape_sequences"}
	rfc3986      = Resource{Title: "RFC 3986: Uniform Resource Identifier (URI): Generic Syntax", URL: "https://www.rfc-editor.org/rfc/rfc3986"}
)

// Builtin returns the tools published by the site, in navigation order.
func Builtin() []Tool {
	return []Tool{
		{
			ID: Base64Encode, Category: CategoryEncoding, Widget: WidgetCodec, Mode: "encode",
			Script:    "base64",
			Resources: []Resource{rfc4648, mdnB64},
			Related:   []string{Base64Decode, StringEscape, QRCodeGenerator},
		},
		{
			ID: Base64Decode, Category: CategoryEncoding, Widget: WidgetCodec, Mode: "decode",
			Script:    "base64",
			Resources: []Resource{rfc4648, mdnB64},
			Related:   []string{Base64Encode, JSONFormatter, StringEscape},
		},
		{
			ID: JSONFormatter, Category: CategoryData, Widget: WidgetConverter, Mode: "format",
			From: "json", To: "json",
			Script:    "convert",
			Resources: []Resource{rfc8259, jsonOrg},
			Related:   []string{JSONToCSV, JSONToYAML, JSONToXML},
		},
		{
			ID: JSONToCSV, Category: CategoryData, Widget: WidgetConverter,
			From: "json", To: "csv",
			Script:    "convert",
			Resources: []Resource{rfc8259, rfc4180},
			Related:   []string{CSVToJSON, JSONFormatter, JSONToYAML},
		},
		{
			ID: CSVToJSON, Category: CategoryData, Widget: WidgetConverter,
			From: "csv", To: "json",
			Script:    "convert",
			Resources: []Resource{rfc4180, rfc8259},
			Related:   []string{JSONToCSV, JSONFormatter},
		},
		{
			ID: JSONToYAML, Category: CategoryData, Widget: WidgetConverter,
			From: "json", To: "yaml",
			Script:    "convert",
			Resources: []Resource{yaml12, rfc8259},
			Related:   []string{JSONToXML, JSONToCSV, JSONFormatter},
		},
		{
			ID: JSONToXML, Category: CategoryData, Widget: WidgetConverter,
			From: "json", To: "xml",
			Script:    "convert",
			Resources: []Resource{xml10, rfc8259},
			Related:   []string{JSONToYAML, HTMLEntities, JSONFormatter},
		},
		{
			ID: QRCodeGenerator, Category: CategoryGenerators, Widget: WidgetQR,
			Script:    "qr",
			Resources: []Resource{iso18004},
			Related:   []string{Base64Encode, EmojiPicker},
		},
		{
			ID: RegexTester, Category: CategoryText, Widget: WidgetRegex,
			Script:    "regex",
			Resources: []Resource{mdnRegex, ecmaRegex},
			Related:   []string{StringEscape, JSONFormatter},
		},
		{
			ID: StringEscape, Category: CategoryText, Widget: WidgetEscape,
			Script:    "escape",
			Resources: []Resource{mdnEsc, rfc3986},
			Related:   []string{HTMLEntities, RegexTester, Base64Encode},
		},
		{
			ID: HTMLEntities, Category: CategoryReference, Widget: WidgetCharRef,
			Script:    "charref",
			Resources: []Resource{whatwgRefs},
			Related:   []string{EmojiPicker, StringEscape},
		},
		{
			ID: EmojiPicker, Category: CategoryReference, Widget: WidgetEmoji,
			Script:    "emoji",
			Resources: []Resource{unicodeEmoji, uts51},
			Related:   []string{HTMLEntities, QRCodeGenerator},
		},
	}
}

var defaultRegistry = MustRegistry(Builtin()...)

// Default returns the registry of builtin tools.
func Default() *Registry { return defaultRegistry }
