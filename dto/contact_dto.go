package dto

type AddressDTO struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	Country *string `json:"country,omitempty"`
}

type SocialLinksDTO struct {
	Facebook  *string `json:"facebook,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
}

// UpsertContactDTO covers both create-or-update and patch; every field is
// optional and merged into the singleton document.
type UpsertContactDTO struct {
	Email       *string         `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string         `json:"phone,omitempty"`
	Address     *AddressDTO     `json:"address,omitempty"`
	SocialLinks *SocialLinksDTO `json:"socialLinks,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
}
