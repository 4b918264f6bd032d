// Package content holds the copy rendered by the landing page sections.
//
// Every section has a default configuration record. Fields carry the key an
// external content editor uses to address them (`editable:"title"`), and
// overrides keyed the same way replace single fields on a copy of the
// defaults.
package content

// Hero is the top section of the landing page.
type Hero struct {
	Badge            string   `editable:"badge"`
	Title            string   `editable:"title"`
	TitleHighlight   string   `editable:"titleHighlight"`
	Description      string   `editable:"description"`
	Features         []string `editable:"features"`
	PrimaryCTA       string   `editable:"primaryCTA"`
	SecondaryCTA     string   `editable:"secondaryCTA"`
	PrimaryCTAHref   string   `editable:"primaryCTAHref"`
	SecondaryCTAHref string   `editable:"secondaryCTAHref"`
	ImageURL         string   `editable:"imageUrl"`
	ImageAlt         string   `editable:"imageAlt"`
	TrustBadge1      string   `editable:"trustBadge1"`
	TrustBadge2      string   `editable:"trustBadge2"`
}

// Features lists the product capabilities between the hero and pricing.
type Features struct {
	Badge               string `editable:"badge"`
	MainTitle           string `editable:"mainTitle"`
	MainTitleHighlight  string `editable:"mainTitleHighlight"`
	MainDescription     string `editable:"mainDescription"`
	Feature1Title       string `editable:"feature1Title"`
	Feature1Description string `editable:"feature1Description"`
	Feature2Title       string `editable:"feature2Title"`
	Feature2Description string `editable:"feature2Description"`
	Feature3Title       string `editable:"feature3Title"`
	Feature3Description string `editable:"feature3Description"`
	Feature4Title       string `editable:"feature4Title"`
	Feature4Description string `editable:"feature4Description"`
}

type Pricing struct {
	Badge              string `editable:"badge"`
	MainTitle          string `editable:"mainTitle"`
	MainTitleHighlight string `editable:"mainTitleHighlight"`
	MainDescription    string `editable:"mainDescription"`
	BillingMonthly     string `editable:"billingMonthly"`
	BillingAnnual      string `editable:"billingAnnual"`
	BillingAnnualBadge string `editable:"billingAnnualBadge"`

	Plan1Name        string `editable:"plan1Name"`
	Plan1Description string `editable:"plan1Description"`
	Plan1Price       string `editable:"plan1Price"`
	Plan1CTA         string `editable:"plan1CTA"`
	Plan1CTAHref     string `editable:"plan1CTAHref"`

	Plan2Name        string `editable:"plan2Name"`
	Plan2Description string `editable:"plan2Description"`
	Plan2Price       string `editable:"plan2Price"`
	Plan2Period      string `editable:"plan2Period"`
	Plan2Badge       string `editable:"plan2Badge"`
	Plan2CTA         string `editable:"plan2CTA"`
	Plan2CTAHref     string `editable:"plan2CTAHref"`
	Plan2Trial       string `editable:"plan2Trial"`

	Plan3Name        string `editable:"plan3Name"`
	Plan3Description string `editable:"plan3Description"`
	Plan3Price       string `editable:"plan3Price"`
	Plan3Badge       string `editable:"plan3Badge"`
	Plan3CTA         string `editable:"plan3CTA"`
	Plan3CTAHref     string `editable:"plan3CTAHref"`

	BottomTitle       string `editable:"bottomTitle"`
	BottomDescription string `editable:"bottomDescription"`
	BottomCTA         string `editable:"bottomCTA"`
	BottomCTAHref     string `editable:"bottomCTAHref"`
}

type Contact struct {
	Badge               string `editable:"badge"`
	MainTitle           string `editable:"mainTitle"`
	MainTitleHighlight  string `editable:"mainTitleHighlight"`
	MainDescription     string `editable:"mainDescription"`
	FormTitle           string `editable:"formTitle"`
	FormDescription     string `editable:"formDescription"`
	SubmitButton        string `editable:"submitButton"`
	ContactSectionTitle string `editable:"contactSectionTitle"`

	Method1Title       string `editable:"method1Title"`
	Method1Description string `editable:"method1Description"`
	Method1Contact     string `editable:"method1Contact"`
	Method2Title       string `editable:"method2Title"`
	Method2Description string `editable:"method2Description"`
	Method2Contact     string `editable:"method2Contact"`
	Method3Title       string `editable:"method3Title"`
	Method3Description string `editable:"method3Description"`
	Method3Contact     string `editable:"method3Contact"`

	OfficesSectionTitle string `editable:"officesSectionTitle"`
	Office1City         string `editable:"office1City"`
	Office1Address      string `editable:"office1Address"`
	Office1Timezone     string `editable:"office1Timezone"`
	Office2City         string `editable:"office2City"`
	Office2Address      string `editable:"office2Address"`
	Office2Timezone     string `editable:"office2Timezone"`
	Office3City         string `editable:"office3City"`
	Office3Address      string `editable:"office3Address"`
	Office3Timezone     string `editable:"office3Timezone"`

	HoursTitle         string `editable:"hoursTitle"`
	HoursWeekdayLabel  string `editable:"hoursWeekdayLabel"`
	HoursWeekdayTime   string `editable:"hoursWeekdayTime"`
	HoursSaturdayLabel string `editable:"hoursSaturdayLabel"`
	HoursSaturdayTime  string `editable:"hoursSaturdayTime"`
	HoursSundayLabel   string `editable:"hoursSundayLabel"`
	HoursSundayTime    string `editable:"hoursSundayTime"`
	SupportNote        string `editable:"supportNote"`

	NameLabel          string `editable:"nameLabel"`
	NamePlaceholder    string `editable:"namePlaceholder"`
	EmailLabel         string `editable:"emailLabel"`
	EmailPlaceholder   string `editable:"emailPlaceholder"`
	CompanyLabel       string `editable:"companyLabel"`
	CompanyPlaceholder string `editable:"companyPlaceholder"`
	PhoneLabel         string `editable:"phoneLabel"`
	PhonePlaceholder   string `editable:"phonePlaceholder"`
	CurrentERPLabel    string `editable:"currentErpLabel"`
	WarehouseSizeLabel string `editable:"warehouseSizeLabel"`
	ChallengesLabel    string `editable:"challengesLabel"`
	MessageLabel       string `editable:"messageLabel"`
	MessagePlaceholder string `editable:"messagePlaceholder"`

	SuccessTitle   string `editable:"successTitle"`
	SuccessMessage string `editable:"successMessage"`
}

type Footer struct {
	LogoText              string `editable:"logoText"`
	CompanyDescription    string `editable:"companyDescription"`
	ContactEmail          string `editable:"contactEmail"`
	ContactPhone          string `editable:"contactPhone"`
	ContactAddress        string `editable:"contactAddress"`
	NewsletterTitle       string `editable:"newsletterTitle"`
	NewsletterPlaceholder string `editable:"newsletterPlaceholder"`
	NewsletterDisclaimer  string `editable:"newsletterDisclaimer"`
	NewsletterSuccess     string `editable:"newsletterSuccess"`
	Section1Title         string `editable:"section1Title"`
	Section2Title         string `editable:"section2Title"`
	Section3Title         string `editable:"section3Title"`
	Section4Title         string `editable:"section4Title"`
	CopyrightText         string `editable:"copyrightText"`
	MadeWithText          string `editable:"madeWithText"`
	SocialText            string `editable:"socialText"`
	Social1Href           string `editable:"social1Href"`
	Social2Href           string `editable:"social2Href"`
	Social3Href           string `editable:"social3Href"`
	Social4Href           string `editable:"social4Href"`
	Social5Href           string `editable:"social5Href"`
}

// Site is the merged content of every section on the page.
type Site struct {
	Hero     Hero
	Features Features
	Pricing  Pricing
	Contact  Contact
	Footer   Footer
}
