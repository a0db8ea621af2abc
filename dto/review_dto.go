package dto

type CreateReviewDTO struct {
	Content  string `json:"content" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	UserName string `json:"userName" binding:"required"`
	Video    string `json:"video"`
	VideoID  string `json:"videoId"`
	IsBest   bool   `json:"isBest"`
}

type UpdateReviewDTO struct {
	Content  *string `json:"content,omitempty"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	UserName *string `json:"userName,omitempty"`
	Video    *string `json:"video,omitempty"`
	VideoID  *string `json:"videoId,omitempty"`
	IsBest   *bool   `json:"isBest,omitempty"`
}
