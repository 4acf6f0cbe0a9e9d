package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/dfwhvac/internal/content"
)

const schemaContext = "https://schema.org"

var (
	cityStateZipPattern = regexp.MustCompile(`^([^,]+),?\s*([A-Z]{2})\s*(\d{5})?`)
	hoursPattern        = regexp.MustCompile(`(?i)(\d+(?::\d+)?(?:AM|PM)?)\s*-\s*(\d+(?::\d+)?(?:AM|PM)?)`)
)

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

type GeoCoordinates struct {
	Type      string `json:"@type"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Place struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type OpeningHours struct {
	Type      string `json:"@type"`
	DayOfWeek string `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
}

// Business is the HVACBusiness / LocalBusiness block.
type Business struct {
	Context            string           `json:"@context"`
	Type               string           `json:"@type"`
	Name               string           `json:"name"`
	Description        string           `json:"description,omitempty"`
	URL                string           `json:"url,omitempty"`
	Telephone          string           `json:"telephone"`
	Email              string           `json:"email,omitempty"`
	FoundingDate       string           `json:"foundingDate,omitempty"`
	Address            PostalAddress    `json:"address"`
	Geo                *GeoCoordinates  `json:"geo,omitempty"`
	AreaServed         []Place          `json:"areaServed,omitempty"`
	OpeningHours       []OpeningHours   `json:"openingHoursSpecification,omitempty"`
	AggregateRating    *AggregateRating `json:"aggregateRating,omitempty"`
	PriceRange         string           `json:"priceRange,omitempty"`
	PaymentAccepted    string           `json:"paymentAccepted,omitempty"`
	CurrenciesAccepted string           `json:"currenciesAccepted,omitempty"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPageSchema is the FAQPage block.
type FAQPageSchema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// ParseAddress splits "street, city, ST zip" into a postal address.
func ParseAddress(address string) PostalAddress {
	out := PostalAddress{Type: "PostalAddress", AddressCountry: "US"}
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 0 {
		return out
	}
	out.StreetAddress = parts[0]
	rest := strings.Join(parts[1:], ", ")
	if match := cityStateZipPattern.FindStringSubmatch(rest); match != nil {
		out.AddressLocality = strings.TrimSpace(match[1])
		out.AddressRegion = match[2]
		out.PostalCode = match[3]
	}
	return out
}

// ParseOpeningHours 解析 "7AM-7PM" 形式的营业时间，休息日与无法识别的值会被跳过。
func ParseOpeningHours(hours content.BusinessHours) []OpeningHours {
	var out []OpeningHours
	for _, day := range hours.Days() {
		value := strings.TrimSpace(day.Hours)
		if value == "" || strings.EqualFold(value, "closed") {
			continue
		}
		match := hoursPattern.FindStringSubmatch(value)
		if match == nil {
			continue
		}
		out = append(out, OpeningHours{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: day.Day,
			Opens:     match[1],
			Closes:    match[2],
		})
	}
	return out
}

func aggregateRating(company content.CompanyInfo, reviewCount int) *AggregateRating {
	rating := company.GoogleRating
	if rating <= 0 {
		rating = 5.0
	}
	if reviewCount <= 0 {
		reviewCount = company.GoogleReviews
	}
	if reviewCount <= 0 {
		reviewCount = 130
	}
	return &AggregateRating{
		Type:        "AggregateRating",
		RatingValue: strconv.FormatFloat(rating, 'f', -1, 64),
		ReviewCount: strconv.Itoa(reviewCount),
		BestRating:  "5",
		WorstRating: "1",
	}
}

func companyName(company content.CompanyInfo) string {
	if name := strings.TrimSpace(company.Name); name != "" {
		return name
	}
	return content.FallbackCompanyInfo().Name
}

// LocalBusiness builds the HVACBusiness block for the site layout.
func LocalBusiness(company content.CompanyInfo, baseURL string) Business {
	areas := make([]Place, 0, len(company.ServiceAreas))
	for _, area := range company.ServiceAreas {
		areas = append(areas, Place{Type: "City", Name: area})
	}
	founded := company.Established
	if founded == "" {
		founded = "1974"
	}
	return Business{
		Context:            schemaContext,
		Type:               "HVACBusiness",
		Name:               companyName(company),
		Description:        company.Description,
		URL:                strings.TrimRight(baseURL, "/"),
		Telephone:          company.Phone,
		Email:              company.Email,
		FoundingDate:       founded,
		Address:            ParseAddress(company.Address),
		Geo:                &GeoCoordinates{Type: "GeoCoordinates", Latitude: "32.9545", Longitude: "-96.9903"},
		AreaServed:         areas,
		OpeningHours:       ParseOpeningHours(company.BusinessHours),
		AggregateRating:    aggregateRating(company, 0),
		PriceRange:         "$$",
		PaymentAccepted:    "Cash, Credit Card, Check",
		CurrenciesAccepted: "USD",
	}
}

// Review builds the LocalBusiness rating block of the reviews page.
// A positive reviewCount overrides the company document.
func Review(company content.CompanyInfo, reviewCount int) Business {
	return Business{
		Context:         schemaContext,
		Type:            "LocalBusiness",
		Name:            companyName(company),
		Telephone:       company.Phone,
		Address:         ParseAddress(company.Address),
		AggregateRating: aggregateRating(company, reviewCount),
	}
}

// FAQPage returns nil when there are no questions.
func FAQPage(faqs []content.FAQ) *FAQPageSchema {
	if len(faqs) == 0 {
		return nil
	}
	entities := make([]Question, 0, len(faqs))
	for _, faq := range faqs {
		entities = append(entities, Question{
			Type:           "Question",
			Name:           faq.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: faq.Answer},
		})
	}
	return &FAQPageSchema{Context: schemaContext, Type: "FAQPage", MainEntity: entities}
}

// Marshal encodes a block for a <script type="application/ld+json"> tag.
// encoding/json escapes <, > and & so the payload cannot close the tag.
func Marshal(v any) (template.JS, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json-ld: %w", err)
	}
	return template.JS(raw), nil
}

// MarshalAll encodes every non-nil block, skipping those that fail.
func MarshalAll(blocks ...any) []template.JS {
	out := make([]template.JS, 0, len(blocks))
	for _, block := range blocks {
		if block == nil {
			continue
		}
		if faq, ok := block.(*FAQPageSchema); ok && faq == nil {
			continue
		}
		if js, err := Marshal(block); err == nil {
			out = append(out, js)
		}
	}
	return out
}
