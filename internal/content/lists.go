package content

// Plan is one pricing card. Text fields come from Pricing and carry the
// editable keys they were read from, the feature list is fixed.
type Plan struct {
	Key         string // editable key prefix, "plan1"
	Name        string
	Description string
	Price       string
	Period      string
	Badge       string
	CTA         string
	CTAHref     string
	Features    []string
	Popular     bool
}

// Plans returns the three pricing cards in display order.
func (p Pricing) Plans() []Plan {
	return []Plan{
		{
			Key:         "plan1",
			Name:        p.Plan1Name,
			Description: p.Plan1Description,
			Price:       p.Plan1Price,
			Features: []string{
				"Up to 3 projects",
				"Basic templates",
				"Community support",
				"1GB storage",
				"Basic analytics",
			},
			CTA:     p.Plan1CTA,
			CTAHref: p.Plan1CTAHref,
		},
		{
			Key:         "plan2",
			Name:        p.Plan2Name,
			Description: p.Plan2Description,
			Price:       p.Plan2Price,
			Period:      p.Plan2Period,
			Badge:       p.Plan2Badge,
			Features: []string{
				"Unlimited projects",
				"Premium templates",
				"Priority support",
				"100GB storage",
				"Advanced analytics",
				"Custom domain",
				"Team collaboration",
				"API access",
			},
			CTA:     p.Plan2CTA,
			CTAHref: p.Plan2CTAHref,
			Popular: true,
		},
		{
			Key:         "plan3",
			Name:        p.Plan3Name,
			Description: p.Plan3Description,
			Price:       p.Plan3Price,
			Badge:       p.Plan3Badge,
			Features: []string{
				"Everything in Professional",
				"Unlimited storage",
				"24/7 phone support",
				"Custom integrations",
				"Advanced security",
				"SLA guarantee",
				"Dedicated account manager",
				"Custom training",
			},
			CTA:     p.Plan3CTA,
			CTAHref: p.Plan3CTAHref,
		},
	}
}

type FeatureItem struct {
	Key         string
	Icon        string
	Title       string
	Description string
}

func (f Features) Items() []FeatureItem {
	return []FeatureItem{
		{"feature1", "lucide:package-search", f.Feature1Title, f.Feature1Description},
		{"feature2", "lucide:brain-circuit", f.Feature2Title, f.Feature2Description},
		{"feature3", "lucide:warehouse", f.Feature3Title, f.Feature3Description},
		{"feature4", "lucide:route", f.Feature4Title, f.Feature4Description},
	}
}

type ContactMethod struct {
	Key         string
	Icon        string
	Title       string
	Description string
	Contact     string
}

func (c Contact) Methods() []ContactMethod {
	return []ContactMethod{
		{"method1", "lucide:mail", c.Method1Title, c.Method1Description, c.Method1Contact},
		{"method2", "lucide:phone", c.Method2Title, c.Method2Description, c.Method2Contact},
		{"method3", "lucide:message-square", c.Method3Title, c.Method3Description, c.Method3Contact},
	}
}

type Office struct {
	Key      string
	City     string
	Address  string
	Timezone string
}

func (c Contact) Offices() []Office {
	return []Office{
		{"office1", c.Office1City, c.Office1Address, c.Office1Timezone},
		{"office2", c.Office2City, c.Office2Address, c.Office2Timezone},
		{"office3", c.Office3City, c.Office3Address, c.Office3Timezone},
	}
}

// Link is a fixed footer link. EditableID addresses its href.
type Link struct {
	Name       string
	Href       string
	EditableID string
}

type LinkSection struct {
	Key   string
	Title string
	Links []Link
}

// Sections returns the four footer link columns.
func (f Footer) Sections() []LinkSection {
	return []LinkSection{
		{"section1Title", f.Section1Title, []Link{
			{"Inventory Tracking", "/features/inventory", "link-footer-inventory"},
			{"AI Forecasting", "/features/forecasting", "link-footer-forecasting"},
			{"Multi-Warehouse", "/features/multi-warehouse", "link-footer-multi-warehouse"},
			{"Picking Optimization", "/features/picking", "link-footer-picking"},
			{"Shipping Integration", "/features/shipping", "link-footer-shipping"},
			{"Analytics", "/features/analytics", "link-footer-analytics"},
		}},
		{"section2Title", f.Section2Title, []Link{
			{"Small Warehouses", "/solutions/small", "link-footer-small"},
			{"Mid-Size Operations", "/solutions/mid-size", "link-footer-mid-size"},
			{"Enterprise", "/solutions/enterprise", "link-footer-enterprise"},
			{"3PL Providers", "/solutions/3pl", "link-footer-3pl"},
			{"E-commerce", "/solutions/ecommerce", "link-footer-ecommerce"},
			{"Manufacturing", "/solutions/manufacturing", "link-footer-manufacturing"},
		}},
		{"section3Title", f.Section3Title, []Link{
			{"About Us", "/about", "link-footer-about"},
			{"Careers", "/careers", "link-footer-careers"},
			{"Partners", "/partners", "link-footer-partners"},
			{"Press", "/press", "link-footer-press"},
			{"Contact", "/contact", "link-footer-contact"},
			{"Support", "/support", "link-footer-support"},
		}},
		{"section4Title", f.Section4Title, []Link{
			{"Help Center", "/help", "link-footer-help"},
			{"Documentation", "/docs", "link-footer-docs"},
			{"API Reference", "/api", "link-footer-api"},
			{"Case Studies", "/case-studies", "link-footer-case-studies"},
			{"Webinars", "/webinars", "link-footer-webinars"},
			{"Blog", "/blog", "link-footer-blog"},
		}},
	}
}

type SocialLink struct {
	Key  string
	Name string
	Icon string
	Href string
}

func (f Footer) SocialLinks() []SocialLink {
	return []SocialLink{
		{"social1Href", "Twitter", "lucide:twitter", f.Social1Href},
		{"social2Href", "Facebook", "lucide:facebook", f.Social2Href},
		{"social3Href", "Instagram", "lucide:instagram", f.Social3Href},
		{"social4Href", "LinkedIn", "lucide:linkedin", f.Social4Href},
		{"social5Href", "GitHub", "lucide:github", f.Social5Href},
	}
}

func (Footer) BottomLinks() []Link {
	return []Link{
		{"Privacy Policy", "/privacy", "link-footer-privacy"},
		{"Terms of Service", "/terms", "link-footer-terms"},
		{"Security", "/security", "link-footer-security"},
		{"Compliance", "/compliance", "link-footer-compliance"},
	}
}

type TrustBadge struct {
	Name string
	Icon string
	Text string
}

func (Footer) TrustBadges() []TrustBadge {
	return []TrustBadge{
		{"SOC2", "lucide:shield", "SOC2 Certified"},
		{"ISO27001", "lucide:award", "ISO 27001"},
		{"GDPR", "lucide:lock", "GDPR Compliant"},
	}
}
