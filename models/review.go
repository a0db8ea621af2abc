package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Review struct {
	Id        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Content   string        `bson:"content" json:"content"`
	Rating    int           `bson:"rating" json:"rating"`
	UserName  string        `bson:"userName" json:"userName"`
	Video     string        `bson:"video,omitempty" json:"video,omitempty"`
	VideoID   string        `bson:"videoId,omitempty" json:"videoId,omitempty"`
	IsBest    bool          `bson:"isBest" json:"isBest"`
	UserID    bson.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
