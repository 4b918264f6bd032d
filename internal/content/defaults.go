package content

import "slices"

var defaultHero = Hero{
	Badge:          "SOC 2 Certified",
	Title:          "Transform Your Warehouse Operations with",
	TitleHighlight: "AI-Powered Intelligence",
	Description:    "Reduce costs by 40% and increase efficiency with real-time inventory tracking, automated workflows, and intelligent demand forecasting.",
	Features: []string{
		"Real-time inventory tracking",
		"AI-powered demand forecasting",
		"Multi-warehouse management",
		"Automated picking optimization",
	},
	PrimaryCTA:       "Start Free Trial",
	SecondaryCTA:     "Watch Demo",
	PrimaryCTAHref:   "/trial",
	SecondaryCTAHref: "#demo",
	ImageURL:         "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?q=80&w=1920&auto=format&fit=crop",
	ImageAlt:         "WarehousePro ERP Dashboard",
	TrustBadge1:      "SOC 2 Certified",
	TrustBadge2:      "99.9% Uptime",
}

var defaultFeatures = Features{
	Badge:               "Features",
	MainTitle:           "Everything You Need to Run",
	MainTitleHighlight:  "a Smarter Warehouse",
	MainDescription:     "One platform for inventory, forecasting, fulfillment and reporting, built for mid-size logistics teams.",
	Feature1Title:       "Real-time inventory tracking",
	Feature1Description: "Know exactly what is on every shelf, in every location, the moment it moves.",
	Feature2Title:       "AI-powered demand forecasting",
	Feature2Description: "Plan purchasing and staffing around forecasts that learn from your order history.",
	Feature3Title:       "Multi-warehouse management",
	Feature3Description: "Balance stock across sites and route orders to the facility that can ship fastest.",
	Feature4Title:       "Automated picking optimization",
	Feature4Description: "Generate pick paths and batches that cut walking time on the floor.",
}

var defaultPricing = Pricing{
	Badge:              "Pricing",
	MainTitle:          "Transparent Pricing for",
	MainTitleHighlight: "Every Warehouse Size",
	MainDescription:    "Choose the perfect plan for your warehouse operations. Scale from small facilities to enterprise distribution centers with no hidden fees.",
	BillingMonthly:     "Monthly",
	BillingAnnual:      "Annual",
	BillingAnnualBadge: "Save 20%",

	Plan1Name:        "Starter",
	Plan1Description: "Perfect for small warehouses up to 10,000 SKUs",
	Plan1Price:       "$299",
	Plan1CTA:         "Start Free Trial",
	Plan1CTAHref:     "/signup",

	Plan2Name:        "Professional",
	Plan2Description: "Best for growing warehouses up to 50,000 SKUs",
	Plan2Price:       "$799",
	Plan2Period:      "/month",
	Plan2Badge:       "Most Popular",
	Plan2CTA:         "Start Free Trial",
	Plan2CTAHref:     "/signup",
	Plan2Trial:       "30-day free trial • No setup fees",

	Plan3Name:        "Enterprise",
	Plan3Description: "For large distribution centers with unlimited SKUs",
	Plan3Price:       "Custom",
	Plan3Badge:       "Contact Sales",
	Plan3CTA:         "Get Custom Quote",
	Plan3CTAHref:     "/contact",

	BottomTitle:       "Need a custom solution?",
	BottomDescription: "We offer tailored warehouse management solutions for complex operations with specific integration requirements and compliance needs.",
	BottomCTA:         "Schedule Demo",
	BottomCTAHref:     "/demo",
}

var defaultContact = Contact{
	Badge:               "Contact",
	MainTitle:           "Get a Personalized",
	MainTitleHighlight:  "Demo",
	MainDescription:     "See how WarehousePro ERP can transform your warehouse operations. Schedule a personalized demo with our warehouse management experts.",
	FormTitle:           "Schedule Your Demo",
	FormDescription:     "Tell us about your warehouse and we'll show you exactly how WarehousePro can help optimize your operations.",
	SubmitButton:        "Schedule Demo",
	ContactSectionTitle: "Get in Touch",

	Method1Title:       "Email Us",
	Method1Description: "Get in touch via email",
	Method1Contact:     "demo@warehousepro.com",
	Method2Title:       "Call Us",
	Method2Description: "Speak with our experts",
	Method2Contact:     "+1 (555) 123-4567",
	Method3Title:       "Live Chat",
	Method3Description: "Chat with support",
	Method3Contact:     "Available 24/7",

	OfficesSectionTitle: "Our Offices",
	Office1City:         "Chicago",
	Office1Address:      "123 Logistics Blvd, Suite 500",
	Office1Timezone:     "CST (UTC-6)",
	Office2City:         "Atlanta",
	Office2Address:      "456 Distribution Way, Floor 12",
	Office2Timezone:     "EST (UTC-5)",
	Office3City:         "Dallas",
	Office3Address:      "789 Supply Chain Ave, Building C",
	Office3Timezone:     "CST (UTC-6)",

	HoursTitle:         "Business Hours",
	HoursWeekdayLabel:  "Monday - Friday",
	HoursWeekdayTime:   "8:00 AM - 7:00 PM",
	HoursSaturdayLabel: "Saturday",
	HoursSaturdayTime:  "9:00 AM - 5:00 PM",
	HoursSundayLabel:   "Sunday",
	HoursSundayTime:    "Closed",
	SupportNote:        "24/7 support included with all plans",

	NameLabel:          "Full Name *",
	NamePlaceholder:    "John Smith",
	EmailLabel:         "Email Address *",
	EmailPlaceholder:   "john@company.com",
	CompanyLabel:       "Company Name *",
	CompanyPlaceholder: "Your Company Name",
	PhoneLabel:         "Phone Number *",
	PhonePlaceholder:   "+1 (555) 123-4567",
	CurrentERPLabel:    "Current ERP System",
	WarehouseSizeLabel: "Warehouse Size",
	ChallengesLabel:    "Current Challenges (Select all that apply)",
	MessageLabel:       "Tell us about your warehouse challenges",
	MessagePlaceholder: "Describe your current warehouse operations, pain points, and what you're looking to improve...",

	SuccessTitle:   "Thanks, your demo request is in!",
	SuccessMessage: "One of our warehouse specialists will reach out within one business day to confirm a time.",
}

var defaultFooter = Footer{
	LogoText:              "WarehousePro",
	CompanyDescription:    "Leading warehouse management ERP solution trusted by mid-size logistics companies worldwide. Transform your operations with AI-powered intelligence and real-time inventory tracking.",
	ContactEmail:          "hello@warehousepro.com",
	ContactPhone:          "+1 (555) 123-4567",
	ContactAddress:        "123 Logistics Blvd, Suite 100",
	NewsletterTitle:       "Weekly Warehouse Tips",
	NewsletterPlaceholder: "Enter your email",
	NewsletterDisclaimer:  "Get weekly warehouse optimization tips and industry insights. No spam, unsubscribe anytime.",
	NewsletterSuccess:     "You're subscribed. Look out for your first tips this week.",
	Section1Title:         "Product",
	Section2Title:         "Solutions",
	Section3Title:         "Company",
	Section4Title:         "Resources",
	CopyrightText:         "© 2024 WarehousePro. All rights reserved.",
	MadeWithText:          "by warehouse experts",
	SocialText:            "Follow us:",
	Social1Href:           "https://twitter.com/warehousepro",
	Social2Href:           "https://facebook.com/warehousepro",
	Social3Href:           "https://instagram.com/warehousepro",
	Social4Href:           "https://linkedin.com/company/warehousepro",
	Social5Href:           "https://github.com/warehousepro",
}

// DefaultHero returns a copy of the default hero content.
func DefaultHero() Hero {
	h := defaultHero
	h.Features = slices.Clone(defaultHero.Features)
	return h
}

func DefaultFeatures() Features { return defaultFeatures }
func DefaultPricing() Pricing   { return defaultPricing }
func DefaultContact() Contact   { return defaultContact }
func DefaultFooter() Footer     { return defaultFooter }

// Defaults returns the content of the whole page with nothing overridden.
func Defaults() Site {
	return Site{
		Hero:     DefaultHero(),
		Features: DefaultFeatures(),
		Pricing:  DefaultPricing(),
		Contact:  DefaultContact(),
		Footer:   DefaultFooter(),
	}
}
