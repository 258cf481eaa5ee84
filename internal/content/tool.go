package content

// Category groups tools on the index page.
type Category string

const (
	CategoryEncoding   Category = "encoding"
	CategoryData       Category = "data"
	CategoryGenerators Category = "generators"
	CategoryText       Category = "text"
	CategoryReference  Category = "reference"
)

// Categories in index page order.
var Categories = []Category{
	CategoryEncoding,
	CategoryData,
	CategoryGenerators,
	CategoryText,
	CategoryReference,
}

// Widget names the interactive block a tool page embeds. The markup for each
// kind is produced by the views package; behaviour comes from the client script.
type Widget string

const (
	WidgetCodec     Widget = "codec"
	WidgetConverter Widget = "converter"
	WidgetQR        Widget = "qr"
	WidgetRegex     Widget = "regex"
	WidgetCharRef   Widget = "charref"
	WidgetEmoji     Widget = "emoji"
	WidgetEscape    Widget = "escape"
)

// Resource is an external reference link. Titles are proper names of
// standards and documents and are not translated.
type Resource struct {
	Title string `validate:"required"`
	URL   string `validate:"required,url"`
}

// Tool is the declarative definition of one tool page.
type Tool struct {
	ID       string   `validate:"required,slug"`
	Category Category `validate:"required,oneof=encoding data generators text reference"`
	Widget   Widget   `validate:"required,oneof=codec converter qr regex charref emoji escape"`

	// Mode, From and To parameterize the widget, e.g. a codec in "decode"
	// mode or a converter from "json" to "csv".
	Mode string `validate:"omitempty,alpha"`
	From string `validate:"omitempty,alpha"`
	To   string `validate:"omitempty,alpha"`

	// Script is the client bundle name, served as tools/<Script>.js.
	Script string `validate:"required,slug"`

	Resources []Resource `validate:"dive"`
	Related   []string   `validate:"dive,slug"`
}

// Key returns the catalog key for field under this tool.
func (t Tool) Key(field string) string {
	return "tools." + t.ID + "." + field
}
