package cms

// Query names double as metric and log labels.
const (
	QueryCompanyInfo      = "companyInfo"
	QuerySiteSettings     = "siteSettings"
	QueryServices         = "services"
	QueryServicesCategory = "servicesByCategory"
	QueryServiceBySlug    = "serviceBySlug"
	QueryTestimonials     = "testimonials"
	QueryCityPages        = "cityPages"
	QueryCityPageBySlug   = "cityPageBySlug"
	QueryOtherCities      = "otherCities"
	QueryFAQs             = "faqs"
	QuerySitemapCities    = "sitemapCities"
	QuerySitemapServices  = "sitemapServices"
	QuerySitemapPages     = "sitemapPages"

	QueryHomePage          = "homepage"
	QueryAboutPage         = "aboutPage"
	QueryFAQPage           = "faqPage"
	QueryReviewsPage       = "reviewsPage"
	QueryContactPage       = "contactPage"
	QueryCompanyPageBySlug = "companyPageBySlug"
)

// CompanyInfoDocumentID is the fixed id of the singleton company document.
const CompanyInfoDocumentID = "companyInfo"

const companyInfoQuery = `*[_type == "companyInfo"][0] {
  name,
  tagline,
  phone,
  phoneDisplay,
  email,
  address,
  serviceAddress,
  description,
  established,
  googleRating,
  googleReviews,
  businessHours,
  serviceAreas
}`

const siteSettingsQuery = `*[_type == "siteSettings"][0] {
  title,
  logoTagline,
  missionStatement,
  siteNameSuffix,
  defaultMetaDescription,
  headerTagline,
  headerCtaText,
  mainNavigation[isVisible != false] | order(order asc) { label, href },
  leadFormTitle,
  leadFormDescription,
  leadFormButtonText,
  leadFormSuccessMessage,
  leadFormTrustSignals,
  footerTagline
}`

const serviceProjection = `{
  title,
  "slug": slug.current,
  category,
  description,
  icon,
  features,
  heroSubtitle,
  heroDescription,
  heroBenefits,
  whatWeDoItems,
  processSteps,
  whyChooseUsReasons,
  emergencyTitle,
  emergencyDescription,
  emergencyFeatures,
  pricingTiers,
  faqs,
  "updatedAt": _updatedAt
}`

const servicesQuery = `*[_type == "service" && defined(slug.current)] | order(order asc, title asc) ` + serviceProjection

const servicesByCategoryQuery = `*[_type == "service" && category == $category && defined(slug.current)] | order(order asc, title asc) ` + serviceProjection

const serviceBySlugQuery = `*[_type == "service" && category == $category && slug.current == $slug][0] ` + serviceProjection

const testimonialsQuery = `*[_type == "testimonial"] | order(publishedAt desc, _createdAt desc) {
  name,
  location,
  rating,
  text,
  service,
  timeAgo
}`

const cityProjection = `{
  cityName,
  "slug": slug.current,
  zipCodes,
  priority,
  headline,
  subheadline,
  introText,
  cityDescription,
  servicesHighlight,
  whyChooseUs,
  featuredServices,
  localTestimonial,
  metaTitle,
  metaDescription
}`

const cityPagesQuery = `*[_type == "cityPage" && isPublished == true && defined(slug.current)] | order(priority asc, cityName asc) ` + cityProjection

const cityPageBySlugQuery = `*[_type == "cityPage" && slug.current == $slug && isPublished == true][0] ` + cityProjection

const otherCitiesQuery = `*[_type == "cityPage" && slug.current != $currentSlug && isPublished == true] | order(priority asc, cityName asc) [0...8] {
  cityName,
  "slug": slug.current
}`

const faqsQuery = `*[_type == "faq" && isPublished != false] | order(category asc, order asc) {
  "id": _id,
  question,
  answer,
  category,
  order
}`

const sitemapCitiesQuery = `*[_type == "cityPage" && isPublished == true && defined(slug.current)] {
  "slug": slug.current,
  "updatedAt": _updatedAt
}`

const sitemapServicesQuery = `*[_type == "service" && defined(slug.current)] {
  "slug": slug.current,
  category,
  "updatedAt": _updatedAt
}`

const sitemapPagesQuery = `*[_type == "companyPage" && defined(slug.current)] {
  "slug": slug.current,
  "updatedAt": _updatedAt
}`

const homepageQuery = `*[_type == "homepage"][0] {
  metaTitle,
  metaDescription,
  heroBadge,
  heroTitle,
  heroTitleHighlight,
  heroTitleLine3,
  heroDescription,
  heroPrimaryButton { text, href },
  heroSecondaryButton { text, href },
  servicesTitle,
  servicesDescription,
  whyUsTitle,
  whyUsSubtitle,
  whyUsItems[] { title, description, icon },
  testimonialsTitle,
  testimonialsSubtitle,
  maxTestimonials,
  ctaTitle,
  ctaDescription
}`

const aboutPageQuery = `*[_type == "aboutPage"][0] {
  metaTitle,
  metaDescription,
  heroTitle,
  heroSubtitle,
  heroDescription,
  storyTitle,
  "storyContent": pt::text(storyContent),
  storyHighlight,
  legacyTimeline[] { year, title, description, person },
  valuesTitle,
  valuesSubtitle,
  brandPillars[] { title, tagline, description, icon, proofPoints },
  statistics[] { value, label, suffix },
  showTeamSection,
  teamTitle,
  teamMembers[] { name, role, bio, "image": image.asset->url },
  showTestimonials,
  showContactForm
}`

const faqPageQuery = `*[_type == "faqPage"][0] {
  heroTitle,
  heroDescription,
  ctaTitle,
  ctaDescription,
  metaTitle,
  metaDescription
}`

const reviewsPageQuery = `*[_type == "reviewsPage"][0] {
  heroTitle,
  heroSubtitle,
  googleBadgeTitle,
  showAllText,
  loadMoreText,
  metaTitle,
  metaDescription
}`

const contactPageQuery = `*[_type == "contactPage"][0] {
  metaTitle,
  metaDescription,
  heroTitle,
  heroSubtitle,
  heroDescription,
  contactSectionTitle,
  phoneDescription,
  emailDescription,
  emergencyText,
  formTitle,
  formDescription,
  ctaTitle,
  ctaDescription
}`

const companyPageBySlugQuery = `*[_type == "companyPage" && slug.current == $slug][0] {
  title,
  "slug": slug.current,
  pageType,
  metaTitle,
  metaDescription,
  heroTitle,
  heroSubtitle,
  heroDescription,
  sections[] { sectionTitle, sectionContent, bulletPoints },
  teamMembers[] { name, role, bio },
  showContactForm,
  showTestimonials
}`

// Queries maps query names to their GROQ text.
var Queries = map[string]string{
	QueryCompanyInfo:      companyInfoQuery,
	QuerySiteSettings:     siteSettingsQuery,
	QueryServices:         servicesQuery,
	QueryServicesCategory: servicesByCategoryQuery,
	QueryServiceBySlug:    serviceBySlugQuery,
	QueryTestimonials:     testimonialsQuery,
	QueryCityPages:        cityPagesQuery,
	QueryCityPageBySlug:   cityPageBySlugQuery,
	QueryOtherCities:      otherCitiesQuery,
	QueryFAQs:             faqsQuery,
	QuerySitemapCities:    sitemapCitiesQuery,
	QuerySitemapServices:  sitemapServicesQuery,
	QuerySitemapPages:     sitemapPagesQuery,

	QueryHomePage:          homepageQuery,
	QueryAboutPage:         aboutPageQuery,
	QueryFAQPage:           faqPageQuery,
	QueryReviewsPage:       reviewsPageQuery,
	QueryContactPage:       contactPageQuery,
	QueryCompanyPageBySlug: companyPageBySlugQuery,
}
