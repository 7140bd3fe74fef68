package models

// SiteConfig is the singleton site.json record.
type SiteConfig struct {
	SiteName   string   `json:"siteName"`
	Tagline    string   `json:"tagline"`
	Logo       string   `json:"logo"`
	HeroImages []string `json:"heroImages"`
}

// DefaultSiteConfig seeds site.json and backs GET when the file is corrupt.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:   "IdealCar",
		Tagline:    "Car Marketplace",
		Logo:       "",
		HeroImages: []string{},
	}
}
