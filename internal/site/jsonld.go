package site

import (
	"encoding/json"

	"github.com/dmitrymomot/toolsite/internal/views"
)

const schemaContext = "https://schema.org"

type ldOffer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type ldApp struct {
	Type                string  `json:"@type"`
	Name                string  `json:"name"`
	Description         string  `json:"description,omitempty"`
	URL                 string  `json:"url"`
	InLanguage          string  `json:"inLanguage"`
	ApplicationCategory string  `json:"applicationCategory"`
	OperatingSystem     string  `json:"operatingSystem"`
	IsAccessibleForFree bool    `json:"isAccessibleForFree"`
	Offers              ldOffer `json:"offers"`
}

type ldAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type ldQuestion struct {
	Type           string   `json:"@type"`
	Name           string   `json:"name"`
	AcceptedAnswer ldAnswer `json:"acceptedAnswer"`
}

type ldFAQ struct {
	Type       string       `json:"@type"`
	MainEntity []ldQuestion `json:"mainEntity"`
}

type ldWebSite struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	InLanguage  string `json:"inLanguage"`
}

type ldGraph struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}

// toolJSONLD describes a tool page as a free web application plus its FAQ.
// encoding/json escapes <, > and & so the result is safe inside a script
// element.
func toolJSONLD(url, lang, name, description string, faq []views.FAQItem) string {
	graph := ldGraph{Context: schemaContext}
	graph.Graph = append(graph.Graph, ldApp{
		Type:                "WebApplication",
		Name:                name,
		Description:         description,
		URL:                 url,
		InLanguage:          lang,
		ApplicationCategory: "DeveloperApplication",
		OperatingSystem:     "Any",
		IsAccessibleForFree: true,
		Offers:              ldOffer{Type: "Offer", Price: "0", PriceCurrency: "USD"},
	})
	if len(faq) > 0 {
		page := ldFAQ{Type: "FAQPage"}
		for _, item := range faq {
			page.MainEntity = append(page.MainEntity, ldQuestion{
				Type:           "Question",
				Name:           item.Question,
				AcceptedAnswer: ldAnswer{Type: "Answer", Text: item.Answer},
			})
		}
		graph.Graph = append(graph.Graph, page)
	}
	return marshalLD(graph)
}

func indexJSONLD(url, lang, name, description string) string {
	return marshalLD(ldWebSite{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        name,
		Description: description,
		URL:         url,
		InLanguage:  lang,
	})
}

func marshalLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
