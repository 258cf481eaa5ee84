package content

import (
	"fmt"
	"strings"
)

// Entity is an HTML named character reference.
type Entity struct {
	Name  string
	Rune  rune
	Group string
}

// Ref returns the reference as written in markup, e.g. "&amp;".
func (e Entity) Ref() string { return "&" + e.Name + ";" }

func (e Entity) Glyph() string { return string(e.Rune) }

// Code returns the code point in U+ notation.
func (e Entity) Code() string { return fmt.Sprintf("U+%04X", e.Rune) }

// Numeric returns the decimal numeric reference, e.g. "&#38;".
func (e Entity) Numeric() string { return fmt.Sprintf("&#%d;", e.Rune) }

// Emoji is one entry of the emoji browser.
type Emoji struct {
	Glyph string
	Name  string
	Group string
}

// Code returns the code points in U+ notation separated by spaces.
func (e Emoji) Code() string {
	parts := make([]string, 0, 2)
	for _, r := range e.Glyph {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}

// Entity groups, in display order.
var EntityGroups = []string{"syntax", "punctuation", "currency", "math", "arrows", "greek", "symbols"}

// Entities is the subset of named references the browser lists.
var Entities = []Entity{
	{"amp", '&', "syntax"},
	{"lt", '<', "syntax"},
	{"gt", '>', "syntax"},
	{"quot", '"', "syntax"},
	{"apos", '\'', "syntax"},
	{"nbsp", '\u00a0', "syntax"},

	{"ndash", '–', "punctuation"},
	{"mdash", '—', "punctuation"},
	{"hellip", '…', "punctuation"},
	{"lsquo", '‘', "punctuation"},
	{"rsquo", '’', "punctuation"},
	{"ldquo", '“', "punctuation"},
	{"rdquo", '”', "punctuation"},
	{"laquo", '«', "punctuation"},
	{"raquo", '»', "punctuation"},
	{"bull", '•', "punctuation"},
	{"middot", '·', "punctuation"},
	{"sect", '§', "punctuation"},
	{"para", '¶', "punctuation"},
	{"iexcl", '¡', "punctuation"},
	{"iquest", '¿', "punctuation"},

	{"cent", '¢', "currency"},
	{"pound", '£', "currency"},
	{"yen", '¥', "currency"},
	{"euro", '€', "currency"},
	{"curren", '¤', "currency"},

	{"plus", '+', "math"},
	{"minus", '−', "math"},
	{"times", '×', "math"},
	{"divide", '÷', "math"},
	{"plusmn", '±', "math"},
	{"ne", '≠', "math"},
	{"le", '≤', "math"},
	{"ge", '≥', "math"},
	{"asymp", '≈', "math"},
	{"infin", '∞', "math"},
	{"sum", '∑', "math"},
	{"prod", '∏', "math"},
	{"radic", '√', "math"},
	{"part", '∂', "math"},
	{"int", '∫', "math"},
	{"deg", '°', "math"},
	{"frac12", '½', "math"},
	{"frac14", '¼', "math"},
	{"permil", '‰', "math"},

	{"larr", '←', "arrows"},
	{"uarr", '↑', "arrows"},
	{"rarr", '→', "arrows"},
	{"darr", '↓', "arrows"},
	{"harr", '↔', "arrows"},
	{"lArr", '⇐', "arrows"},
	{"rArr", '⇒', "arrows"},
	{"hArr", '⇔', "arrows"},

	{"alpha", 'α', "greek"},
	{"beta", 'β', "greek"},
	{"gamma", 'γ', "greek"},
	{"delta", 'δ', "greek"},
	{"epsilon", 'ε', "greek"},
	{"lambda", 'λ', "greek"},
	{"mu", 'μ', "greek"},
	{"pi", 'π', "greek"},
	{"sigma", 'σ', "greek"},
	{"omega", 'ω', "greek"},
	{"Delta", 'Δ', "greek"},
	{"Omega", 'Ω', "greek"},

	{"copy", '©', "symbols"},
	{"reg", '®', "symbols"},
	{"trade", '™', "symbols"},
	{"dagger", '†', "symbols"},
	{"check", '✓', "symbols"},
	{"hearts", '♥', "symbols"},
	{"spades", '♠', "symbols"},
	{"clubs", '♣', "symbols"},
	{"diams", '♦', "symbols"},
	{"star", '☆', "symbols"},
}

// Emoji groups, in display order.
var EmojiGroups = []string{"smileys", "people", "nature", "food", "activities", "travel", "objects", "symbols"}

// Emojis is the set listed by the emoji browser.
var Emojis = []Emoji{
	{"😀", "grinning face", "smileys"},
	{"😂", "face with tears of joy", "smileys"},
	{"🙂", "slightly smiling face", "smileys"},
	{"😉", "winking face", "smileys"},
	{"😍", "smiling face with heart-eyes", "smileys"},
	{"🤔", "thinking face", "smileys"},
	{"😎", "smiling face with sunglasses", "smileys"},
	{"😭", "loudly crying face", "smileys"},
	{"😴", "sleeping face", "smileys"},
	{"🤯", "exploding head", "smileys"},

	{"👍", "thumbs up", "people"},
	{"👎", "thumbs down", "people"},
	{"👏", "clapping hands", "people"},
	{"🙌", "raising hands", "people"},
	{"🙏", "folded hands", "people"},
	{"💪", "flexed biceps", "people"},
	{"👋", "waving hand", "people"},
	{"👀", "eyes", "people"},

	{"🐶", "dog face", "nature"},
	{"🐱", "cat face", "nature"},
	{"🦊", "fox", "nature"},
	{"🐼", "panda", "nature"},
	{"🌵", "cactus", "nature"},
	{"🌻", "sunflower", "nature"},
	{"🌈", "rainbow", "nature"},
	{"🔥", "fire", "nature"},

	{"🍎", "red apple", "food"},
	{"🍕", "pizza", "food"},
	{"🍣", "sushi", "food"},
	{"🍜", "steaming bowl", "food"},
	{"☕", "hot beverage", "food"},
	{"🍰", "shortcake", "food"},

	{"⚽", "soccer ball", "activities"},
	{"🏀", "basketball", "activities"},
	{"🎮", "video game", "activities"},
	{"🎸", "guitar", "activities"},
	{"🎉", "party popper", "activities"},
	{"🏆", "trophy", "activities"},

	{"🚀", "rocket", "travel"},
	{"✈️", "airplane", "travel"},
	{"🚲", "bicycle", "travel"},
	{"🏠", "house", "travel"},
	{"🗺️", "world map", "travel"},

	{"💻", "laptop", "objects"},
	{"📱", "mobile phone", "objects"},
	{"⌨️", "keyboard", "objects"},
	{"💡", "light bulb", "objects"},
	{"🔒", "locked", "objects"},
	{"🔑", "key", "objects"},
	{"📦", "package", "objects"},
	{"🧪", "test tube", "objects"},

	{"✅", "check mark button", "symbols"},
	{"❌", "cross mark", "symbols"},
	{"⚠️", "warning", "symbols"},
	{"❤️", "red heart", "symbols"},
	{"⭐", "star", "symbols"},
	{"💯", "hundred points", "symbols"},
	{"♻️", "recycling symbol", "symbols"},
	{"🔗", "link", "symbols"},
}
