package dto

import "github.com/visioncraft/agencybackend/models"

type CreateAboutPageDTO struct {
	AgencyInfo   models.AgencyInfo    `json:"agencyInfo" binding:"required"`
	TeamMembers  []models.TeamMember  `json:"teamMembers"`
	Achievements []models.Achievement `json:"achievements"`
	BrandLogos   []models.BrandLogo   `json:"brandLogos"`
	IsPublished  *bool                `json:"isPublished"`
}

type UpdateAboutPageDTO struct {
	AgencyInfo   *models.AgencyInfo    `json:"agencyInfo,omitempty"`
	TeamMembers  *[]models.TeamMember  `json:"teamMembers,omitempty"`
	Achievements *[]models.Achievement `json:"achievements,omitempty"`
	BrandLogos   *[]models.BrandLogo   `json:"brandLogos,omitempty"`
	IsPublished  *bool                 `json:"isPublished,omitempty"`
}

type TeamMemberDTO struct {
	Name     string                 `json:"name" binding:"required"`
	Role     string                 `json:"role" binding:"required"`
	Front    models.TeamMemberFront `json:"front" binding:"required"`
	Back     models.TeamMemberBack  `json:"back" binding:"required"`
	Order    *int                   `json:"order"`
	IsActive *bool                  `json:"isActive"`
}

type UpdateTeamMemberDTO struct {
	Name     *string                 `json:"name,omitempty"`
	Role     *string                 `json:"role,omitempty"`
	Front    *models.TeamMemberFront `json:"front,omitempty"`
	Back     *models.TeamMemberBack  `json:"back,omitempty"`
	Order    *int                    `json:"order,omitempty"`
	IsActive *bool                   `json:"isActive,omitempty"`
}

type AchievementDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateAchievementDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Year        *string `json:"year,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Image       *string `json:"image,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type BrandLogoDTO struct {
	Name     string `json:"name" binding:"required"`
	Logo     string `json:"logo" binding:"required"`
	Website  string `json:"website"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

type UpdateBrandLogoDTO struct {
	Name     *string `json:"name,omitempty"`
	Logo     *string `json:"logo,omitempty"`
	Website  *string `json:"website,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateOrderDTO carries the new ordering for a section: item ids in the
// order they should appear.
type UpdateOrderDTO struct {
	ItemIds []string `json:"itemIds" binding:"required,min=1"`
}

// ImportAboutPageDTO is the export payload fed back through the import
// endpoint.
type ImportAboutPageDTO struct {
	AgencyInfo   models.AgencyInfo    `json:"agencyInfo" binding:"required"`
	TeamMembers  []models.TeamMember  `json:"teamMembers"`
	Achievements []models.Achievement `json:"achievements"`
	BrandLogos   []models.BrandLogo   `json:"brandLogos"`
}
