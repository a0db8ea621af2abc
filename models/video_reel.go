package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type VideoReel struct {
	Id               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string        `bson:"title" json:"title"`
	Description      string        `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL         string        `bson:"videoUrl" json:"videoUrl"`
	VideoCloudID     string        `bson:"videoCloudId,omitempty" json:"videoCloudId,omitempty"`
	ThumbnailURL     string        `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	ThumbnailCloudID string        `bson:"thumbnailCloudId,omitempty" json:"thumbnailCloudId,omitempty"`
	Category         string        `bson:"category" json:"category"`
	Tags             []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	IsBest           bool          `bson:"isBest" json:"isBest"`
	UserID           bson.ObjectID `bson:"user" json:"user"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
}
