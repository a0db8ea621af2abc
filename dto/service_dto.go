package dto

type CreateServiceDTO struct {
	Title        string   `json:"title" binding:"required,max=100"`
	Description  string   `json:"description" binding:"required,max=500"`
	Features     []string `json:"features" binding:"required,min=1"`
	Icon         string   `json:"icon" binding:"required"`
	Details      string   `json:"details" binding:"required"`
	DeliveryTime string   `json:"deliveryTime" binding:"required"`
	Revisions    string   `json:"revisions" binding:"required"`
	Examples     []string `json:"examples" binding:"required,min=1"`
}

type UpdateServiceDTO struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Features     *[]string `json:"features,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	Details      *string   `json:"details,omitempty"`
	DeliveryTime *string   `json:"deliveryTime,omitempty"`
	Revisions    *string   `json:"revisions,omitempty"`
	Examples     *[]string `json:"examples,omitempty"`
}
