// Package content holds the CMS document shapes, the static fallbacks
// compiled into the binary and the Store that prefers the CMS copy.
package content

import (
	"strings"
	"time"
)

// BusinessHours 按星期存放营业时间文本，如 "7AM-7PM" 或 "Closed"。
type BusinessHours struct {
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}

// DayHours pairs a schema.org day name with its hours text.
type DayHours struct {
	Day   string
	Hours string
}

// Days returns the week in schema.org order, Monday first.
func (h BusinessHours) Days() []DayHours {
	return []DayHours{
		{Day: "Monday", Hours: h.Monday},
		{Day: "Tuesday", Hours: h.Tuesday},
		{Day: "Wednesday", Hours: h.Wednesday},
		{Day: "Thursday", Hours: h.Thursday},
		{Day: "Friday", Hours: h.Friday},
		{Day: "Saturday", Hours: h.Saturday},
		{Day: "Sunday", Hours: h.Sunday},
	}
}

// IsZero reports whether no day has hours set.
func (h BusinessHours) IsZero() bool {
	for _, day := range h.Days() {
		if strings.TrimSpace(day.Hours) != "" {
			return false
		}
	}
	return true
}

// CompanyInfo is the singleton company document.
type CompanyInfo struct {
	Name           string        `json:"name"`
	Tagline        string        `json:"tagline,omitempty"`
	Phone          string        `json:"phone"`
	PhoneDisplay   string        `json:"phoneDisplay,omitempty"`
	Email          string        `json:"email,omitempty"`
	Address        string        `json:"address,omitempty"`
	ServiceAddress string        `json:"serviceAddress,omitempty"`
	Description    string        `json:"description,omitempty"`
	Established    string        `json:"established,omitempty"`
	GoogleRating   float64       `json:"googleRating,omitempty"`
	GoogleReviews  int           `json:"googleReviews,omitempty"`
	BusinessHours  BusinessHours `json:"businessHours"`
	ServiceAreas   []string      `json:"serviceAreas,omitempty"`
}

// DialPhone 返回用于拨号的号码，优先使用纯数字的展示号码。
func (c CompanyInfo) DialPhone() string {
	if strings.TrimSpace(c.PhoneDisplay) != "" {
		return c.PhoneDisplay
	}
	return c.Phone
}

// NavItem is one header navigation link.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SiteSettings carries the editable header, footer and lead form copy.
type SiteSettings struct {
	Title                  string    `json:"title,omitempty"`
	LogoTagline            string    `json:"logoTagline,omitempty"`
	MissionStatement       string    `json:"missionStatement,omitempty"`
	SiteNameSuffix         string    `json:"siteNameSuffix,omitempty"`
	DefaultMetaDescription string    `json:"defaultMetaDescription,omitempty"`
	HeaderTagline          string    `json:"headerTagline,omitempty"`
	HeaderCtaText          string    `json:"headerCtaText,omitempty"`
	MainNavigation         []NavItem `json:"mainNavigation,omitempty"`
	LeadFormTitle          string    `json:"leadFormTitle,omitempty"`
	LeadFormDescription    string    `json:"leadFormDescription,omitempty"`
	LeadFormButtonText     string    `json:"leadFormButtonText,omitempty"`
	LeadFormSuccessMessage string    `json:"leadFormSuccessMessage,omitempty"`
	LeadFormTrustSignals   string    `json:"leadFormTrustSignals,omitempty"`
	FooterTagline          string    `json:"footerTagline,omitempty"`
}

// ProcessStep is one numbered step of a service process.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PricingTier is a starting price card.
type PricingTier struct {
	Title         string   `json:"title"`
	StartingPrice string   `json:"startingPrice"`
	Includes      []string `json:"includes,omitempty"`
}

// QA is an inline question/answer pair on a service page.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service 既用作服务列表卡片，也用作服务详情页。
type Service struct {
	Title                string        `json:"title"`
	Slug                 string        `json:"slug"`
	Category             string        `json:"category"`
	Description          string        `json:"description,omitempty"`
	Icon                 string        `json:"icon,omitempty"`
	Features             []string      `json:"features,omitempty"`
	HeroSubtitle         string        `json:"heroSubtitle,omitempty"`
	HeroDescription      string        `json:"heroDescription,omitempty"`
	HeroBenefits         []string      `json:"heroBenefits,omitempty"`
	WhatWeDoItems        []string      `json:"whatWeDoItems,omitempty"`
	ProcessSteps         []ProcessStep `json:"processSteps,omitempty"`
	WhyChooseUsReasons   []string      `json:"whyChooseUsReasons,omitempty"`
	EmergencyTitle       string        `json:"emergencyTitle,omitempty"`
	EmergencyDescription string        `json:"emergencyDescription,omitempty"`
	EmergencyFeatures    []string      `json:"emergencyFeatures,omitempty"`
	PricingTiers         []PricingTier `json:"pricingTiers,omitempty"`
	FAQs                 []QA          `json:"faqs,omitempty"`
	UpdatedAt            *time.Time    `json:"updatedAt,omitempty"`
}

// Path returns the detail page path.
func (s Service) Path() string {
	return "/services/" + s.Category + "/" + s.Slug
}

// Testimonial is a customer review card.
type Testimonial struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Service  string `json:"service,omitempty"`
	TimeAgo  string `json:"timeAgo,omitempty"`
}

// Valid reports whether the testimonial can be shown.
func (t Testimonial) Valid() bool {
	return t.Rating >= 1 && t.Rating <= 5 && strings.TrimSpace(t.Text) != ""
}

// FeaturedService is a link card on a city page.
type FeaturedService struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
}

// LocalTestimonial is the optional quote shown on a city page.
type LocalTestimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Location string `json:"location,omitempty"`
}

// CityPage is a local SEO landing page.
type CityPage struct {
	CityName          string            `json:"cityName"`
	Slug              string            `json:"slug"`
	ZipCodes          []string          `json:"zipCodes,omitempty"`
	Priority          int               `json:"priority,omitempty"`
	Headline          string            `json:"headline,omitempty"`
	Subheadline       string            `json:"subheadline,omitempty"`
	IntroText         string            `json:"introText,omitempty"`
	CityDescription   string            `json:"cityDescription,omitempty"`
	ServicesHighlight string            `json:"servicesHighlight,omitempty"`
	WhyChooseUs       string            `json:"whyChooseUs,omitempty"`
	FeaturedServices  []FeaturedService `json:"featuredServices,omitempty"`
	LocalTestimonial  *LocalTestimonial `json:"localTestimonial,omitempty"`
	MetaTitle         string            `json:"metaTitle,omitempty"`
	MetaDescription   string            `json:"metaDescription,omitempty"`
}

// Path returns the landing page path.
func (c CityPage) Path() string {
	return "/cities-served/" + c.Slug
}

// FAQ is one question of the FAQ page.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
	Order    int    `json:"order,omitempty"`
}

// SitemapDocument is the slug projection used by the sitemap.
type SitemapDocument struct {
	Slug      string     `json:"slug"`
	Category  string     `json:"category,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// SitemapDocuments groups the slug projections by page kind.
type SitemapDocuments struct {
	Cities   []SitemapDocument
	Services []SitemapDocument
	Pages    []SitemapDocument
}
