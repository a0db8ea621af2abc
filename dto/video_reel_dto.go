package dto

type CreateVideoReelDTO struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	VideoURL         string   `json:"videoUrl" binding:"required"`
	VideoCloudID     string   `json:"videoCloudId"`
	ThumbnailURL     string   `json:"thumbnailUrl"`
	ThumbnailCloudID string   `json:"thumbnailCloudId"`
	Category         string   `json:"category" binding:"required"`
	Tags             []string `json:"tags"`
	IsBest           bool     `json:"isBest"`
}

type UpdateVideoReelDTO struct {
	Title            *string   `json:"title,omitempty"`
	Description      *string   `json:"description,omitempty"`
	VideoURL         *string   `json:"videoUrl,omitempty"`
	VideoCloudID     *string   `json:"videoCloudId,omitempty"`
	ThumbnailURL     *string   `json:"thumbnailUrl,omitempty"`
	ThumbnailCloudID *string   `json:"thumbnailCloudId,omitempty"`
	Category         *string   `json:"category,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	IsBest           *bool     `json:"isBest,omitempty"`
}
