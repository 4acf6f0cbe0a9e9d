package content

import (
	"fmt"
	"strings"
)

// WithDefaults 为 CMS 中留空的城市页字段补上基于城市名的默认文案。
func (c CityPage) WithDefaults(company CompanyInfo) CityPage {
	name := strings.TrimSpace(company.Name)
	if name == "" {
		name = FallbackCompanyInfo().Name
	}
	city := strings.TrimSpace(c.CityName)

	out := c
	if strings.TrimSpace(out.Headline) == "" {
		out.Headline = fmt.Sprintf("HVAC Services in %s, TX", city)
	}
	if strings.TrimSpace(out.Subheadline) == "" {
		out.Subheadline = fmt.Sprintf("Professional Heating & Air Conditioning for %s Residents", city)
	}
	if strings.TrimSpace(out.IntroText) == "" {
		out.IntroText = fmt.Sprintf("Looking for reliable HVAC services in %s? %s provides professional heating and air conditioning repair, installation, and maintenance to homeowners and businesses throughout %s and surrounding areas. Our experienced technicians are available 24/7 for emergency repairs.", city, name, city)
	}
	if strings.TrimSpace(out.ServicesHighlight) == "" {
		out.ServicesHighlight = "We offer comprehensive HVAC services including AC repair, heating system installation, preventive maintenance, and indoor air quality solutions. Whether you need a quick repair or a complete system replacement, our team has the expertise to get the job done right."
	}
	if strings.TrimSpace(out.WhyChooseUs) == "" {
		out.WhyChooseUs = fmt.Sprintf("When you choose %s for your %s home or business, you're choosing a company that puts quality and customer satisfaction first. We're fully licensed and insured, offer upfront pricing with no hidden fees, and stand behind our work with comprehensive warranties.", name, city)
	}
	if len(out.FeaturedServices) == 0 {
		out.FeaturedServices = DefaultFeaturedServices()
	}
	if strings.TrimSpace(out.MetaTitle) == "" {
		out.MetaTitle = fmt.Sprintf("HVAC Services in %s, TX | %s", city, name)
	}
	if strings.TrimSpace(out.MetaDescription) == "" {
		desc := fmt.Sprintf("Professional heating and air conditioning services in %s, Texas. 24/7 emergency HVAC repair, installation, and maintenance.", city)
		if len(out.ZipCodes) > 0 {
			desc += " Serving zip codes: " + strings.Join(out.ZipCodes, ", ") + "."
		}
		out.MetaDescription = desc
	}
	return out
}
