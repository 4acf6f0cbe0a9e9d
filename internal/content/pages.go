package content

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dfwhvac/internal/cms"
)

// Link is an editable button.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// HighlightItem is an icon card, e.g. the "why us" grid of the homepage.
type HighlightItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// HomePage is the singleton homepage copy.
type HomePage struct {
	MetaTitle            string          `json:"metaTitle,omitempty"`
	MetaDescription      string          `json:"metaDescription,omitempty"`
	HeroBadge            string          `json:"heroBadge,omitempty"`
	HeroTitle            string          `json:"heroTitle,omitempty"`
	HeroTitleHighlight   string          `json:"heroTitleHighlight,omitempty"`
	HeroTitleLine3       string          `json:"heroTitleLine3,omitempty"`
	HeroDescription      string          `json:"heroDescription,omitempty"`
	HeroPrimaryButton    Link            `json:"heroPrimaryButton"`
	HeroSecondaryButton  Link            `json:"heroSecondaryButton"`
	ServicesTitle        string          `json:"servicesTitle,omitempty"`
	ServicesDescription  string          `json:"servicesDescription,omitempty"`
	WhyUsTitle           string          `json:"whyUsTitle,omitempty"`
	WhyUsSubtitle        string          `json:"whyUsSubtitle,omitempty"`
	WhyUsItems           []HighlightItem `json:"whyUsItems,omitempty"`
	TestimonialsTitle    string          `json:"testimonialsTitle,omitempty"`
	TestimonialsSubtitle string          `json:"testimonialsSubtitle,omitempty"`
	MaxTestimonials      int             `json:"maxTestimonials,omitempty"`
	CTATitle             string          `json:"ctaTitle,omitempty"`
	CTADescription       string          `json:"ctaDescription,omitempty"`
}

// TimelineEntry is one generation of the family history.
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Person      string `json:"person,omitempty"`
}

// BrandPillar is one value card of the about page.
type BrandPillar struct {
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline,omitempty"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	ProofPoints []string `json:"proofPoints,omitempty"`
}

// Statistic is a big number with a label.
type Statistic struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Suffix string `json:"suffix,omitempty"`
}

// TeamMember is a staff card.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

// AboutPage is the singleton about page copy. StoryContent is plain text
// with blank lines between paragraphs.
type AboutPage struct {
	MetaTitle        string          `json:"metaTitle,omitempty"`
	MetaDescription  string          `json:"metaDescription,omitempty"`
	HeroTitle        string          `json:"heroTitle,omitempty"`
	HeroSubtitle     string          `json:"heroSubtitle,omitempty"`
	HeroDescription  string          `json:"heroDescription,omitempty"`
	StoryTitle       string          `json:"storyTitle,omitempty"`
	StoryContent     string          `json:"storyContent,omitempty"`
	StoryHighlight   string          `json:"storyHighlight,omitempty"`
	LegacyTimeline   []TimelineEntry `json:"legacyTimeline,omitempty"`
	ValuesTitle      string          `json:"valuesTitle,omitempty"`
	ValuesSubtitle   string          `json:"valuesSubtitle,omitempty"`
	BrandPillars     []BrandPillar   `json:"brandPillars,omitempty"`
	Statistics       []Statistic     `json:"statistics,omitempty"`
	ShowTeamSection  bool            `json:"showTeamSection"`
	TeamTitle        string          `json:"teamTitle,omitempty"`
	TeamMembers      []TeamMember    `json:"teamMembers,omitempty"`
	ShowTestimonials bool            `json:"showTestimonials"`
	ShowContactForm  bool            `json:"showContactForm"`
}

// Google 统计项的标签，展示时用实时数据覆盖。
const (
	statGoogleRating    = "Google Rating"
	statCustomerReviews = "Customer Reviews"
)

// LiveStatistics replaces the Google rating and review count stats with the
// company figures so the about page never shows stale numbers.
func (p AboutPage) LiveStatistics(company CompanyInfo) []Statistic {
	out := make([]Statistic, len(p.Statistics))
	for i, stat := range p.Statistics {
		switch stat.Label {
		case statGoogleRating:
			if company.GoogleRating > 0 {
				stat.Value = fmt.Sprintf("%.1f", company.GoogleRating)
			}
		case statCustomerReviews:
			if company.GoogleReviews > 0 {
				stat.Value = fmt.Sprintf("%d+", company.GoogleReviews)
			}
		}
		out[i] = stat
	}
	return out
}

// FAQPageCopy is the hero and call to action around the FAQ accordion.
type FAQPageCopy struct {
	HeroTitle       string `json:"heroTitle,omitempty"`
	HeroDescription string `json:"heroDescription,omitempty"`
	CTATitle        string `json:"ctaTitle,omitempty"`
	CTADescription  string `json:"ctaDescription,omitempty"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

// ReviewsPage is the copy of the reviews page. ShowAllText may contain
// {shown} and {total}.
type ReviewsPage struct {
	HeroTitle        string `json:"heroTitle,omitempty"`
	HeroSubtitle     string `json:"heroSubtitle,omitempty"`
	GoogleBadgeTitle string `json:"googleBadgeTitle,omitempty"`
	ShowAllText      string `json:"showAllText,omitempty"`
	LoadMoreText     string `json:"loadMoreText,omitempty"`
	MetaTitle        string `json:"metaTitle,omitempty"`
	MetaDescription  string `json:"metaDescription,omitempty"`
}

// ShowingText fills the {shown} and {total} placeholders.
func (p ReviewsPage) ShowingText(shown, total int) string {
	return strings.NewReplacer(
		"{shown}", fmt.Sprint(shown),
		"{total}", fmt.Sprint(total),
	).Replace(p.ShowAllText)
}

// ContactPage is the copy of the contact page.
type ContactPage struct {
	MetaTitle           string `json:"metaTitle,omitempty"`
	MetaDescription     string `json:"metaDescription,omitempty"`
	HeroTitle           string `json:"heroTitle,omitempty"`
	HeroSubtitle        string `json:"heroSubtitle,omitempty"`
	HeroDescription     string `json:"heroDescription,omitempty"`
	ContactSectionTitle string `json:"contactSectionTitle,omitempty"`
	PhoneDescription    string `json:"phoneDescription,omitempty"`
	EmailDescription    string `json:"emailDescription,omitempty"`
	EmergencyText       string `json:"emergencyText,omitempty"`
	FormTitle           string `json:"formTitle,omitempty"`
	FormDescription     string `json:"formDescription,omitempty"`
	CTATitle            string `json:"ctaTitle,omitempty"`
	CTADescription      string `json:"ctaDescription,omitempty"`
}

// PageSection is a titled text block of a company page.
type PageSection struct {
	SectionTitle   string   `json:"sectionTitle,omitempty"`
	SectionContent string   `json:"sectionContent,omitempty"`
	BulletPoints   []string `json:"bulletPoints,omitempty"`
}

// CompanyPage is an editor-created page served at /{slug}.
type CompanyPage struct {
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	PageType         string        `json:"pageType,omitempty"`
	MetaTitle        string        `json:"metaTitle,omitempty"`
	MetaDescription  string        `json:"metaDescription,omitempty"`
	HeroTitle        string        `json:"heroTitle,omitempty"`
	HeroSubtitle     string        `json:"heroSubtitle,omitempty"`
	HeroDescription  string        `json:"heroDescription,omitempty"`
	Sections         []PageSection `json:"sections,omitempty"`
	TeamMembers      []TeamMember  `json:"teamMembers,omitempty"`
	ShowContactForm  bool          `json:"showContactForm"`
	ShowTestimonials bool          `json:"showTestimonials"`
}

// Path returns the page path.
func (p CompanyPage) Path() string {
	return "/" + p.Slug
}

// FallbackHomePage returns the bundled homepage copy.
func FallbackHomePage() HomePage {
	return HomePage{
		MetaTitle:           "DFW HVAC | Dallas-Fort Worth Heating & Air Conditioning",
		MetaDescription:     "Expert HVAC service with integrity and care. Three generations of trusted heating & cooling service in Dallas-Fort Worth. Call (972) 777-COOL.",
		HeroBadge:           "Three Generations of Trust",
		HeroTitle:           "Dallas-Fort Worth's",
		HeroTitleHighlight:  "Trusted HVAC",
		HeroTitleLine3:      "Experts",
		HeroDescription:     "Expert HVAC service with integrity and care. A three-generation family commitment to quality workmanship throughout Dallas-Fort Worth.",
		HeroPrimaryButton:   Link{Text: "Call (972) 777-COOL", Href: "tel:+19727772665"},
		HeroSecondaryButton: Link{Text: "Get Free Estimate", Href: "/estimate"},
		ServicesTitle:       "Complete HVAC Solutions",
		ServicesDescription: "From repairs to new system installations, we provide comprehensive residential and commercial HVAC services throughout the Dallas-Fort Worth area.",
		WhyUsTitle:          "Why Dallas-Fort Worth Trusts DFW HVAC",
		WhyUsSubtitle:       "Expert service with integrity and care",
		WhyUsItems: []HighlightItem{
			{Title: "Three-Generation Legacy", Description: "A family commitment to HVAC excellence since 1974", Icon: "years"},
			{Title: "Licensed & Insured", Description: "Fully licensed technicians you can trust", Icon: "shield"},
			{Title: "Fast Response", Description: "Quick, reliable service when you need it", Icon: "clock"},
			{Title: "Guaranteed Work", Description: "Quality workmanship backed by comprehensive warranties", Icon: "trending"},
		},
		TestimonialsTitle:    "What Our Customers Say",
		TestimonialsSubtitle: "Real reviews from verified Google customers",
		MaxTestimonials:      12,
		CTATitle:             "Ready to Get Started?",
		CTADescription:       "Contact DFW HVAC today for expert service with integrity and care.",
	}
}

// FallbackAboutPage returns the bundled about page copy.
func FallbackAboutPage() AboutPage {
	return AboutPage{
		MetaTitle:       "About Us | DFW HVAC",
		MetaDescription: "Three generations of trusted heating and air conditioning service in Dallas-Fort Worth.",
		HeroTitle:       "About DFW HVAC",
		HeroSubtitle:    "Three Generations of Trusted HVAC Service",
		HeroDescription: "A family owned heating and air conditioning contractor serving Dallas-Fort Worth homes and businesses since 1974.",
		StoryTitle:      "Our Story",
		StoryContent:    "What started as one technician and a service van has grown into a three-generation family business.\n\nWe still answer the phone the same way: with honest advice, fair prices and work we stand behind.",
		StoryHighlight:  "Three-Generation Family Legacy",
		ValuesTitle:     "Our Values",
		ValuesSubtitle:  "The pillars that guide everything we do",
		BrandPillars: []BrandPillar{
			{
				Title:       "Trust",
				Tagline:     "Honest, Transparent, Ethical",
				Description: "We provide honest assessments and fair pricing. No hidden fees, no unnecessary repairs, just straightforward service you can count on.",
				Icon:        "shield",
				ProofPoints: []string{
					"Transparent, flat-rate pricing with no hidden fees",
					"Honest assessment of your system's needs",
					"Clear documentation of all work performed",
					"Customer-first recommendations, not upsells",
				},
			},
			{
				Title:       "Excellence",
				Tagline:     "Skilled, Professional, Safe",
				Description: "Our technicians are fully licensed, trained and committed to delivering top-quality work with expert problem-solving.",
				Icon:        "award",
				ProofPoints: []string{
					"Licensed and insured technicians",
					"Ongoing training on latest HVAC technology",
					"Quality parts and meticulous workmanship",
					"Optimal system design for your specific needs",
				},
			},
			{
				Title:       "Care",
				Tagline:     "Attentive, Consultative, Convenient",
				Description: "We treat every customer like family, ensuring a seamless experience from first call to completed service.",
				Icon:        "heart",
				ProofPoints: []string{
					"Easy online booking and flexible scheduling",
					"Proactive communication throughout service",
					"Respectful of your home and time",
					"Comprehensive warranties on all work",
				},
			},
		},
		Statistics: []Statistic{
			{Value: "50+", Label: "Years of Family Legacy"},
			{Value: "5.0", Label: statGoogleRating, Suffix: "Stars"},
			{Value: "130+", Label: statCustomerReviews},
			{Value: "Same-Day", Label: "Service Available"},
		},
		TeamTitle:        "Meet Our Team",
		ShowTestimonials: true,
		ShowContactForm:  true,
	}
}

// FallbackFAQPageCopy returns the bundled FAQ page copy.
func FallbackFAQPageCopy() FAQPageCopy {
	return FAQPageCopy{
		HeroTitle:       "Frequently Asked Questions",
		HeroDescription: "Find answers to common questions about our HVAC services, pricing, scheduling, and more.",
		CTATitle:        "Still Have Questions?",
		CTADescription:  "Our friendly team is here to help. Give us a call or schedule a free consultation.",
		MetaTitle:       "FAQ | DFW HVAC | Frequently Asked Questions",
		MetaDescription: "Answers to common questions about HVAC service, pricing, scheduling, equipment and maintenance.",
	}
}

// FallbackReviewsPage returns the bundled reviews page copy.
func FallbackReviewsPage() ReviewsPage {
	return ReviewsPage{
		HeroTitle:        "Customer Reviews",
		HeroSubtitle:     "See What Our Customers Say About Us",
		GoogleBadgeTitle: "Based on Google Reviews",
		ShowAllText:      "Showing {shown} of {total} reviews with text",
		LoadMoreText:     "Load More Reviews",
		MetaTitle:        "Customer Reviews | DFW HVAC | 5-Star Rated HVAC Service",
		MetaDescription:  "Read what Dallas-Fort Worth homeowners and businesses say about our heating and air conditioning service.",
	}
}

// FallbackContactPage returns the bundled contact page copy.
func FallbackContactPage() ContactPage {
	return ContactPage{
		MetaTitle:           "Contact Us | DFW HVAC",
		MetaDescription:     "Questions about your heating or cooling system? Send us a message or give us a call.",
		HeroTitle:           "Contact Us",
		HeroSubtitle:        "We're Here to Help",
		HeroDescription:     "Questions about your heating or cooling system? Send us a message or give us a call.",
		ContactSectionTitle: "Get In Touch",
		PhoneDescription:    "Same-day service M-Sat",
		EmailDescription:    "We respond within 24 hours",
		EmergencyText:       "Same-Day Service Available",
		FormTitle:           "Send Us a Message",
		FormDescription:     "Fill out the form below and we'll get back to you within 24 hours",
		CTATitle:            "Ready to Experience the DFW HVAC Difference?",
		CTADescription:      "Call us today for fast, reliable HVAC service",
	}
}

// singleton 把 CMS 文档直接解码到内置副本上：未填写的字段在结果中是 null，
// 解码时保持内置值不变。
func singleton[T any](ctx context.Context, s *Store, name string, fallback func() T) T {
	doc := fallback()
	if !s.fetch(ctx, name, nil, &doc) {
		return fallback()
	}
	return doc
}

// HomePage returns the homepage copy.
func (s *Store) HomePage(ctx context.Context) HomePage {
	page := singleton(ctx, s, cms.QueryHomePage, FallbackHomePage)
	base := FallbackHomePage()
	if len(page.WhyUsItems) == 0 {
		page.WhyUsItems = base.WhyUsItems
	}
	if page.MaxTestimonials <= 0 {
		page.MaxTestimonials = base.MaxTestimonials
	}
	if strings.TrimSpace(page.HeroPrimaryButton.Text) == "" || strings.TrimSpace(page.HeroPrimaryButton.Href) == "" {
		page.HeroPrimaryButton = base.HeroPrimaryButton
	}
	if strings.TrimSpace(page.HeroSecondaryButton.Text) == "" || strings.TrimSpace(page.HeroSecondaryButton.Href) == "" {
		page.HeroSecondaryButton = base.HeroSecondaryButton
	}
	return page
}

// AboutPage returns the about page copy. An empty timeline stays empty.
func (s *Store) AboutPage(ctx context.Context) AboutPage {
	page := singleton(ctx, s, cms.QueryAboutPage, FallbackAboutPage)
	base := FallbackAboutPage()
	if len(page.BrandPillars) == 0 {
		page.BrandPillars = base.BrandPillars
	}
	if len(page.Statistics) == 0 {
		page.Statistics = base.Statistics
	}
	return page
}

// FAQPageCopy returns the FAQ page copy.
func (s *Store) FAQPageCopy(ctx context.Context) FAQPageCopy {
	return singleton(ctx, s, cms.QueryFAQPage, FallbackFAQPageCopy)
}

// ReviewsPage returns the reviews page copy.
func (s *Store) ReviewsPage(ctx context.Context) ReviewsPage {
	return singleton(ctx, s, cms.QueryReviewsPage, FallbackReviewsPage)
}

// ContactPage returns the contact page copy.
func (s *Store) ContactPage(ctx context.Context) ContactPage {
	return singleton(ctx, s, cms.QueryContactPage, FallbackContactPage)
}

var pageSlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidPageSlug reports whether slug can name a company page.
func ValidPageSlug(slug string) bool {
	return len(slug) <= 96 && pageSlugPattern.MatchString(slug)
}

// CompanyPage returns an editor page by slug. There is no fallback: a
// missing page is a 404.
func (s *Store) CompanyPage(ctx context.Context, slug string) (*CompanyPage, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !ValidPageSlug(slug) {
		return nil, false
	}
	var doc CompanyPage
	if !s.fetch(ctx, cms.QueryCompanyPageBySlug, map[string]any{"slug": slug}, &doc) || strings.TrimSpace(doc.Title) == "" {
		return nil, false
	}
	doc.Slug = slug
	return &doc, true
}
