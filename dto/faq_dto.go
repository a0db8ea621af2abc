package dto

type CreateFAQDTO struct {
	Question string `json:"question" binding:"required,max=500"`
	Answer   string `json:"answer" binding:"required,max=2000"`
	Category string `json:"category"`
	Priority *int   `json:"priority" binding:"omitempty,min=0,max=10"`
	IsActive *bool  `json:"isActive"`
}

type UpdateFAQDTO struct {
	Question *string `json:"question,omitempty" binding:"omitempty,max=500"`
	Answer   *string `json:"answer,omitempty" binding:"omitempty,max=2000"`
	Category *string `json:"category,omitempty"`
	Priority *int    `json:"priority,omitempty" binding:"omitempty,min=0,max=10"`
	IsActive *bool   `json:"isActive,omitempty"`
}
