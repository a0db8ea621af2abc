package dto

type CreateCategoryDTO struct {
	Name              string `json:"name" binding:"required,max=50"`
	IsShownInCategory *bool  `json:"isShownInCategory"`
}

// UpdateCategoryDTO fields are optional pointers so absent keys are skipped.
type UpdateCategoryDTO struct {
	Name              *string `json:"name"`
	IsShownInCategory *bool   `json:"isShownInCategory"`
}
