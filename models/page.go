package models

// Page slugs address singleton documents in the "pages" collection.
const (
	SlugHome       = "home"
	SlugAbout      = "about"
	SlugProducts   = "products"
	SlugCareers    = "careers"
	SlugEcovillage = "ecovillage"
	SlugInvestors  = "investors"
	SlugContact    = "contact"

	SlugContactSettings = "contact-settings"
	SlugFooter          = "footer"
)

// HeroView is the normalized hero block shown at the top of each page.
type HeroView struct {
	Slug       string `json:"slug"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	ImageURL   string `json:"imageUrl"`
}

// SectionView is a normalized body section of a page. Paragraphs is the
// section body split into plain-text paragraphs; it is never nil.
type SectionView struct {
	ID         string   `json:"id"`
	Page       string   `json:"page"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Paragraphs []string `json:"paragraphs"`
	Order      int      `json:"order"`
}

// ContactSettingsView is the normalized contact-page settings singleton.
type ContactSettingsView struct {
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	MapEmbedURL string `json:"mapEmbedUrl"`
	Hours       string `json:"hours"`
}

// FooterView is the normalized site-footer singleton.
type FooterView struct {
	Tagline   string `json:"tagline"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}
