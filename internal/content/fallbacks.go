package content

const (
	CategoryResidential = "residential"
	CategoryCommercial  = "commercial"
)

// FallbackCompanyInfo 在 CMS 不可用时使用。
func FallbackCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:           "DFW HVAC",
		Tagline:        "Family Owned Since 1974",
		Phone:          "(972) 777-COOL",
		PhoneDisplay:   "(972) 777-2665",
		Email:          "info@dfwhvac.com",
		Address:        "556 S Coppell Rd Ste 103, Coppell, TX 75019",
		ServiceAddress: "Dallas-Fort Worth & Surrounding Areas",
		Description:    "Family owned Air Conditioning and Heating contractor serving Dallas - Fort Worth and surrounding areas since 1974.",
		Established:    "1974",
		GoogleRating:   5.0,
		GoogleReviews:  118,
		BusinessHours: BusinessHours{
			Monday:    "7AM-7PM",
			Tuesday:   "7AM-7PM",
			Wednesday: "7AM-7PM",
			Thursday:  "7AM-7PM",
			Friday:    "7AM-7PM",
			Saturday:  "8AM-1PM",
			Sunday:    "Closed",
		},
		ServiceAreas: []string{
			"Dallas", "Fort Worth", "Arlington", "Plano", "Irving", "Garland",
			"Grand Prairie", "Mesquite", "Carrollton", "Richardson", "Lewisville", "Coppell",
		},
	}
}

// FallbackSiteSettings returns the header, footer and lead form defaults.
func FallbackSiteSettings() SiteSettings {
	return SiteSettings{
		Title:                  "DFW HVAC",
		LogoTagline:            "Three Generations of Trusted Service",
		SiteNameSuffix:         "DFW HVAC",
		DefaultMetaDescription: "Family owned heating and air conditioning contractor serving Dallas-Fort Worth since 1974. AC repair, heating, maintenance and indoor air quality.",
		HeaderTagline:          "Serving Dallas-Fort Worth Since 1974",
		HeaderCtaText:          "Call Now",
		MainNavigation: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Services", Href: "/services"},
			{Label: "Cities Served", Href: "/cities-served"},
			{Label: "About", Href: "/about"},
			{Label: "Reviews", Href: "/reviews"},
			{Label: "FAQ", Href: "/faq"},
			{Label: "Contact", Href: "/contact"},
		},
		LeadFormTitle:          "Get Your Free Estimate",
		LeadFormDescription:    "Fill out the form below and we'll contact you within 24 hours",
		LeadFormButtonText:     "Get My Free Estimate",
		LeadFormSuccessMessage: "Thank you! We'll contact you within 24 hours.",
		LeadFormTrustSignals:   "✓ Free estimates • ✓ Licensed & insured • ✓ Fast response time",
		FooterTagline:          "Expert HVAC service with integrity and care. A three-generation family commitment to quality workmanship in Dallas-Fort Worth.",
	}
}

// FallbackServices returns the service cards of one category; an empty
// category returns all of them.
func FallbackServices(category string) []Service {
	residential := []Service{
		{
			Title:       "Air Conditioning",
			Slug:        "air-conditioning",
			Category:    CategoryResidential,
			Description: "Complete AC installation, repair, and replacement services",
			Features:    []string{"Fast Response Time", "Energy Efficient Systems", "Licensed Technicians", "Warranty Included"},
			Icon:        "snowflake",
		},
		{
			Title:       "Heating",
			Slug:        "heating",
			Category:    CategoryResidential,
			Description: "Furnace repair, heat pump service, and heating system installation",
			Features:    []string{"Furnace Repair", "Heat Pump Service", "System Installation", "Maintenance Plans"},
			Icon:        "flame",
		},
		{
			Title:       "Preventative Maintenance",
			Slug:        "preventative-maintenance",
			Category:    CategoryResidential,
			Description: "Regular maintenance to keep your HVAC system running efficiently",
			Features:    []string{"Bi-Annual Service", "Filter Changes", "System Tune-ups", "Priority Scheduling"},
			Icon:        "wrench",
		},
		{
			Title:       "Indoor Air Quality",
			Slug:        "indoor-air-quality",
			Category:    CategoryResidential,
			Description: "Improve your home's air quality with our specialized solutions",
			Features:    []string{"Air Purifiers", "Humidity Control", "Duct Cleaning", "UV Light Systems"},
			Icon:        "wind",
		},
	}
	commercial := []Service{
		{
			Title:       "Commercial Air Conditioning",
			Slug:        "commercial-air-conditioning",
			Category:    CategoryCommercial,
			Description: "Large-scale AC systems for commercial properties",
			Features:    []string{"Rooftop Units", "Chiller Systems", "Professional Service", "Preventive Maintenance"},
			Icon:        "building",
		},
		{
			Title:       "Commercial Heating",
			Slug:        "commercial-heating",
			Category:    CategoryCommercial,
			Description: "Commercial heating solutions and boiler services",
			Features:    []string{"Boiler Service", "Heat Pumps", "Radiant Heating", "Energy Audits"},
			Icon:        "factory",
		},
		{
			Title:       "Commercial Maintenance",
			Slug:        "commercial-maintenance",
			Category:    CategoryCommercial,
			Description: "Comprehensive maintenance programs for businesses",
			Features:    []string{"Scheduled Service", "Fast Response", "Equipment Monitoring", "Cost Control"},
			Icon:        "clipboard-check",
		},
	}

	switch category {
	case CategoryResidential:
		return residential
	case CategoryCommercial:
		return commercial
	case "":
		return append(residential, commercial...)
	default:
		return nil
	}
}

// FallbackServiceDetail returns the bundled detail page for category/slug.
func FallbackServiceDetail(category, slug string) (*Service, bool) {
	if category != CategoryResidential {
		return nil, false
	}
	switch slug {
	case "air-conditioning":
		return &Service{
			Title:           "Residential Air Conditioning",
			Slug:            slug,
			Category:        category,
			Description:     "Professional AC installation, repair, and maintenance for maximum comfort during hot Texas summers.",
			Icon:            "snowflake",
			HeroSubtitle:    "Keep Your Dallas Home Cool & Comfortable",
			HeroDescription: "Expert AC installation, repair, and maintenance services for residential properties throughout the Dallas-Fort Worth area.",
			HeroBenefits: []string{
				"Fast Response Time - Same day service available",
				"Licensed & Insured Technicians",
				"Energy Efficient System Recommendations",
				"Comprehensive Warranty Coverage",
			},
			WhatWeDoItems: []string{
				"Central air conditioning repair and installation",
				"Ductless mini-split systems",
				"AC unit replacement and upgrades",
				"Emergency AC repair services",
				"Preventive maintenance programs",
				"Energy efficiency assessments",
			},
			ProcessSteps: []ProcessStep{
				{Step: 1, Title: "Initial Assessment", Description: "Comprehensive evaluation of your current system and cooling needs"},
				{Step: 2, Title: "Professional Diagnosis", Description: "Detailed analysis using advanced diagnostic equipment"},
				{Step: 3, Title: "Solution & Quote", Description: "Clear explanation of issues and transparent pricing"},
				{Step: 4, Title: "Expert Installation/Repair", Description: "Professional service with quality parts and workmanship"},
			},
			WhyChooseUsReasons: []string{
				"50+ years of experience in Dallas-Fort Worth area",
				"5.0-star Google rating with 118+ reviews",
				"Licensed, bonded, and insured technicians",
				"Transparent pricing with no hidden fees",
				"Same-day service availability",
				"Comprehensive warranty on all work",
			},
			EmergencyTitle:       "Fast Response Service",
			EmergencyDescription: "When your AC breaks down during a Texas heatwave, you need fast, reliable service.",
			EmergencyFeatures: []string{
				"Same-day service available",
				"Experienced diagnostic technicians",
				"Mobile service units fully stocked",
				"Quality repairs that last",
			},
			PricingTiers: []PricingTier{
				{Title: "Maintenance", StartingPrice: "Starting at $149", Includes: []string{"Complete system inspection", "Filter replacement", "Coil cleaning", "Performance testing"}},
				{Title: "Repair", StartingPrice: "Diagnostic $99", Includes: []string{"Professional diagnosis", "Upfront pricing", "Quality parts", "1-year warranty"}},
				{Title: "Installation", StartingPrice: "Free Estimate", Includes: []string{"In-home consultation", "Energy efficiency analysis", "Financing available", "Professional installation"}},
			},
			FAQs: []QA{
				{Question: "How often should I replace my AC filter?", Answer: "Most filters should be replaced every 1-3 months, depending on usage, pets, and air quality. We'll check your filter during every service call and recommend the best replacement schedule for your home."},
				{Question: "What size AC unit do I need for my home?", Answer: "AC sizing depends on square footage, insulation, windows, and other factors. Our technicians perform detailed load calculations to ensure you get the right size system for optimal efficiency and comfort."},
				{Question: "How long do AC units typically last?", Answer: "With proper maintenance, most AC units last 12-15 years in Texas. Regular maintenance can extend the life of your system and help prevent costly breakdowns."},
				{Question: "Do you service all AC brands?", Answer: "Yes, our experienced technicians work on all major AC brands including Trane, Carrier, Lennox, Goodman, Rheem, and more. We stock parts for most common systems."},
			},
		}, true
	case "heating":
		return &Service{
			Title:           "Residential Heating",
			Slug:            slug,
			Category:        category,
			Description:     "Expert furnace repair, heat pump service, and heating system installation for comfortable winters.",
			Icon:            "flame",
			HeroSubtitle:    "Stay Warm All Winter Long",
			HeroDescription: "Expert heating system installation, repair, and maintenance for residential properties in Dallas-Fort Worth.",
			HeroBenefits: []string{
				"Gas furnace and heat pump expertise",
				"Emergency heating repair service",
				"Energy-efficient heating solutions",
				"Comprehensive warranty coverage",
			},
			WhatWeDoItems: []string{
				"Gas furnace installation and repair",
				"Heat pump systems and service",
				"Ductwork inspection and repair",
				"Thermostat installation and programming",
				"Heating system maintenance",
				"Indoor air quality improvements",
			},
			ProcessSteps: []ProcessStep{
				{Step: 1, Title: "System Evaluation", Description: "Thorough inspection of your heating system and components"},
				{Step: 2, Title: "Performance Testing", Description: "Advanced diagnostics to identify efficiency and safety issues"},
				{Step: 3, Title: "Recommendations", Description: "Clear options for repair, replacement, or upgrades"},
				{Step: 4, Title: "Professional Service", Description: "Quality installation or repair with guaranteed results"},
			},
			PricingTiers: []PricingTier{
				{Title: "Maintenance", StartingPrice: "Starting at $129", Includes: []string{"Complete system inspection", "Safety testing", "Filter replacement", "Performance optimization"}},
				{Title: "Repair", StartingPrice: "Diagnostic $99", Includes: []string{"Professional diagnosis", "Safety inspection", "Transparent pricing", "Quality parts warranty"}},
				{Title: "Installation", StartingPrice: "Free Estimate", Includes: []string{"In-home consultation", "Load calculation", "Financing options", "Professional installation"}},
			},
			FAQs: []QA{
				{Question: "How often should I schedule heating maintenance?", Answer: "We recommend annual heating maintenance before winter to ensure safe, efficient operation and prevent breakdowns during cold weather."},
				{Question: "What are signs my furnace needs repair?", Answer: "Common signs include strange noises, uneven heating, higher energy bills, frequent cycling, or the system not turning on. Call us for professional diagnosis."},
			},
		}, true
	}
	return nil, false
}

// FallbackTestimonials 为评价轮播提供静态数据。
func FallbackTestimonials() []Testimonial {
	return []Testimonial{
		{
			Name:     "Jesse D.",
			Location: "DFW Area",
			Rating:   5,
			Text:     "I had an excellent experience with DFW HVAC! I just bought a home and needed my HVAC system checked out. They came out the very next day, clearly explained the issue, and provided me with multiple options for resolving it.",
			Service:  "System Inspection",
			TimeAgo:  "7 months ago",
		},
		{
			Name:     "Daniel Ryan",
			Location: "DFW Area",
			Rating:   5,
			Text:     "Jonathan and DFW HVAC were great! We had our AC go out in the middle of the night and reached out to them first thing in the morning. They were responsive and able to get us on their schedule that afternoon. Jonathan was able to diagnose and fix the issue quickly.",
			Service:  "AC Repair",
			TimeAgo:  "2 months ago",
		},
		{
			Name:     "Beth Schneider",
			Location: "DFW Area",
			Rating:   5,
			Text:     "Great experience! They were prompt to respond to initial call and arrange time to come out to assess the issue I was having. They did a great job and very fair price for all the work that was needed. I have complete confidence in the quality of their work.",
			Service:  "HVAC Service",
			TimeAgo:  "2 months ago",
		},
		{
			Name:     "Google Reviews",
			Location: "Verified Customers",
			Rating:   5,
			Text:     "Service tech got there on time and solved the issue quickly. The service was excellent and the price fair. I'm so grateful to have a dependable company to work with.",
			Service:  "Multiple Services",
			TimeAgo:  "Recent reviews",
		},
	}
}

// DefaultFeaturedServices are shown on city pages without their own list.
func DefaultFeaturedServices() []FeaturedService {
	return []FeaturedService{
		{Title: "Air Conditioning Repair", Description: "24/7 emergency AC repair services", Link: "/services/residential/air-conditioning"},
		{Title: "Heating Services", Description: "Furnace repair, maintenance & installation", Link: "/services/residential/heating"},
		{Title: "HVAC Installation", Description: "New system installation & replacement", Link: "/services/residential/air-conditioning"},
		{Title: "Maintenance Plans", Description: "Preventive maintenance to extend system life", Link: "/services/residential/air-conditioning"},
	}
}

// FallbackFAQs is the FAQ page content used when the CMS has none.
func FallbackFAQs() []FAQ {
	return []FAQ{
		{ID: "rs1", Category: "residential-services", Order: 1,
			Question: "What HVAC services do you offer for homes?",
			Answer:   "We offer comprehensive residential HVAC services including air conditioning repair, installation, and maintenance; heating system repair and installation; indoor air quality solutions; duct cleaning and sealing; thermostat installation; and same-day repairs. We service all major brands and system types."},
		{ID: "rs2", Category: "residential-services", Order: 2,
			Question: "Do you service all HVAC brands?",
			Answer:   "Yes, our technicians are trained and certified to work on all major HVAC brands including Carrier, Trane, Lennox, Rheem, Goodman, American Standard, York, Bryant, and many others. We can repair, maintain, or replace any residential heating or cooling system."},
		{ID: "rs3", Category: "residential-services", Order: 3,
			Question: "What areas do you serve?",
			Answer:   "We serve the entire Dallas-Fort Worth metroplex including Dallas, Fort Worth, Arlington, Plano, Irving, Garland, Grand Prairie, McKinney, Frisco, Denton, Coppell, Lewisville, Carrollton, Richardson, and surrounding communities within approximately 30 miles of our location."},
		{ID: "rs4", Category: "residential-services", Order: 4,
			Question: "How long has DFW HVAC been in business?",
			Answer:   "DFW HVAC has been family-owned and operated since 1974 - that's over 50 years of serving the Dallas-Fort Worth community. Our longevity speaks to our commitment to quality service, fair pricing, and customer satisfaction."},
		{ID: "rp1", Category: "residential-pricing", Order: 1,
			Question: "Do you offer free estimates?",
			Answer:   "Yes, we provide free estimates for new system installations and major repairs. For service calls and diagnostics, we charge a flat diagnostic fee which is waived if you proceed with the recommended repair. We believe in transparent, upfront pricing with no hidden fees."},
		{ID: "rp2", Category: "residential-pricing", Order: 2,
			Question: "What payment methods do you accept?",
			Answer:   "We accept all major credit cards (Visa, MasterCard, American Express, Discover), checks, and cash. For larger installations, we also offer financing options with approved credit to help make your investment more manageable."},
		{ID: "rp3", Category: "residential-pricing", Order: 3,
			Question: "How much does a new AC unit cost?",
			Answer:   "The cost of a new AC system varies based on the size of your home, system efficiency rating (SEER), brand, and any additional work needed. Residential systems typically range from $4,500 to $12,000+ installed. We provide detailed quotes after assessing your specific needs."},
		{ID: "rsc1", Category: "residential-scheduling", Order: 1,
			Question: "How quickly can you schedule a service appointment?",
			Answer:   "For routine maintenance and non-emergency repairs, we typically schedule appointments within 1-3 business days. During peak season (summer and winter), wait times may be slightly longer. Emergency calls are prioritized and usually addressed same-day or next-day."},
		{ID: "rsc2", Category: "residential-scheduling", Order: 2,
			Question: "Do I need to be home during the service call?",
			Answer:   "Yes, we require an adult (18+) to be present during service calls for safety and liability reasons. This also allows our technician to explain findings, discuss options, and answer any questions you may have about your system."},
		{ID: "re1", Category: "residential-equipment", Order: 1,
			Question: "How long do HVAC systems typically last?",
			Answer:   "With proper maintenance, air conditioning systems typically last 15-20 years, while furnaces can last 20-25 years. Heat pumps average 15-18 years. Factors affecting lifespan include maintenance frequency, usage patterns, and local climate conditions."},
		{ID: "re2", Category: "residential-equipment", Order: 2,
			Question: "What is a SEER rating and why does it matter?",
			Answer:   "SEER (Seasonal Energy Efficiency Ratio) measures an air conditioner's cooling efficiency. Higher SEER ratings mean greater efficiency and lower energy bills. Current minimum standards require 14-15 SEER, while high-efficiency units reach 20+ SEER. Higher efficiency units cost more upfront but save money over time."},
		{ID: "re3", Category: "residential-equipment", Order: 3,
			Question: "Should I repair or replace my old HVAC system?",
			Answer:   "Consider replacement if your system is 15+ years old, requires frequent repairs, uses R-22 refrigerant (phased out), or your energy bills are increasing. Generally, if a repair costs more than 50% of a new system's value, replacement is the better investment."},
		{ID: "rm1", Category: "residential-maintenance", Order: 1,
			Question: "How often should I have my HVAC system serviced?",
			Answer:   "We recommend professional maintenance twice per year - once in spring for your AC before summer, and once in fall for your heating system before winter. Regular maintenance prevents breakdowns, extends equipment life, maintains efficiency, and keeps warranties valid."},
		{ID: "rm2", Category: "residential-maintenance", Order: 2,
			Question: "How often should I change my air filter?",
			Answer:   "Standard 1-inch filters should be changed every 30-60 days. Higher-quality 4-inch filters can last 3-6 months. Factors like pets, allergies, and home dustiness may require more frequent changes. A dirty filter restricts airflow, reduces efficiency, and can damage your system."},
		{ID: "rm3", Category: "residential-maintenance", Order: 3,
			Question: "Do you offer maintenance plans or service agreements?",
			Answer:   "Yes, we offer annual maintenance plans that include two tune-ups per year, priority scheduling, discounts on repairs, and other benefits. Our plans help you budget for HVAC care while ensuring your system runs efficiently year-round."},
		{ID: "c1", Category: "commercial", Order: 1,
			Question: "Do you service commercial HVAC systems?",
			Answer:   "Yes, we provide comprehensive commercial HVAC services for systems under 20 tons, which covers most small to medium commercial buildings including offices, retail spaces, restaurants, medical facilities, and light industrial applications."},
		{ID: "c2", Category: "commercial", Order: 2,
			Question: "Can you work around our business hours?",
			Answer:   "Absolutely. We understand that HVAC work can disrupt your business operations. We offer flexible scheduling including early morning, evening, and weekend appointments to minimize impact on your customers and employees."},
		{ID: "c3", Category: "commercial", Order: 3,
			Question: "Do you offer commercial maintenance contracts?",
			Answer:   "Yes, we offer customized maintenance agreements for commercial clients. These include scheduled preventive maintenance, priority service, detailed documentation for your records, and discounted labor rates. Regular maintenance is critical for commercial systems."},
		{ID: "c4", Category: "commercial", Order: 4,
			Question: "How quickly can you respond to commercial HVAC issues?",
			Answer:   "We prioritize commercial calls because we understand a failed HVAC system can mean lost revenue, uncomfortable customers, and employee productivity issues. We typically respond to commercial calls within 2-4 hours during business hours."},
		{ID: "c5", Category: "commercial", Order: 5,
			Question: "Are your technicians certified for commercial work?",
			Answer:   "Yes, our technicians hold EPA certifications for refrigerant handling and are trained in commercial HVAC systems. Many hold additional certifications from manufacturers like Carrier, Trane, and Lennox for commercial equipment service and installation."},
	}
}
