package dto

type CreateStatisticDTO struct {
	Title        string `json:"title" binding:"required,max=100"`
	Value        string `json:"value" binding:"required,max=50"`
	Description  string `json:"description" binding:"omitempty,max=200"`
	Icon         string `json:"icon"`
	Type         string `json:"type"`
	IsActive     *bool  `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

type UpdateStatisticDTO struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=100"`
	Value        *string `json:"value,omitempty" binding:"omitempty,max=50"`
	Description  *string `json:"description,omitempty" binding:"omitempty,max=200"`
	Icon         *string `json:"icon,omitempty"`
	Type         *string `json:"type,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}
