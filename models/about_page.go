package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AboutSocialPlatforms is the allowed platform set for social links on the
// about page (team members and agency info).
var AboutSocialPlatforms = map[string]bool{
	"linkedin":  true,
	"twitter":   true,
	"instagram": true,
	"facebook":  true,
	"youtube":   true,
	"behance":   true,
	"github":    true,
	"website":   true,
}

type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
	Icon     string `bson:"icon,omitempty" json:"icon,omitempty"`
}

type TeamMemberFront struct {
	Image     string `bson:"image" json:"image"`
	Specialty string `bson:"specialty" json:"specialty"`
	Icon      string `bson:"icon" json:"icon"`
}

type TeamMemberBack struct {
	Quote  string       `bson:"quote" json:"quote"`
	Bio    string       `bson:"bio" json:"bio"`
	Social []SocialLink `bson:"social,omitempty" json:"social,omitempty"`
}

type TeamMember struct {
	Id       bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string          `bson:"name" json:"name"`
	Role     string          `bson:"role" json:"role"`
	Front    TeamMemberFront `bson:"front" json:"front"`
	Back     TeamMemberBack  `bson:"back" json:"back"`
	Order    int             `bson:"order" json:"order"`
	IsActive bool            `bson:"isActive" json:"isActive"`
}

type Achievement struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Year        string        `bson:"year" json:"year"`
	Icon        string        `bson:"icon" json:"icon"`
	Image       string        `bson:"image" json:"image"`
	Order       int           `bson:"order" json:"order"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
}

type BrandLogo struct {
	Id       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Logo     string        `bson:"logo" json:"logo"`
	Website  string        `bson:"website,omitempty" json:"website,omitempty"`
	Order    int           `bson:"order" json:"order"`
	IsActive bool          `bson:"isActive" json:"isActive"`
}

type AgencyStat struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
}

type AgencyInfo struct {
	Name         string       `bson:"name" json:"name"`
	Tagline      string       `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description  string       `bson:"description" json:"description"`
	FoundedYear  int          `bson:"foundedYear" json:"foundedYear"`
	Mission      string       `bson:"mission,omitempty" json:"mission,omitempty"`
	Vision       string       `bson:"vision,omitempty" json:"vision,omitempty"`
	Values       []string     `bson:"values,omitempty" json:"values,omitempty"`
	HeroImage    string       `bson:"heroImage" json:"heroImage"`
	SocialLinks  []SocialLink `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	ContactEmail string       `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string       `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	Stats        []AgencyStat `bson:"stats,omitempty" json:"stats,omitempty"`
}

// AboutPage is the full about-page document. At most one page is published
// at a time; the public endpoint serves the published page with inactive
// items filtered out.
type AboutPage struct {
	Id           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	AgencyInfo   AgencyInfo    `bson:"agencyInfo" json:"agencyInfo"`
	TeamMembers  []TeamMember  `bson:"teamMembers" json:"teamMembers"`
	Achievements []Achievement `bson:"achievements" json:"achievements"`
	BrandLogos   []BrandLogo   `bson:"brandLogos" json:"brandLogos"`
	IsPublished  bool          `bson:"isPublished" json:"isPublished"`
	LastUpdated  time.Time     `bson:"lastUpdated" json:"lastUpdated"`
	UpdatedBy    bson.ObjectID `bson:"updatedBy,omitempty" json:"updatedBy,omitzero"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
