package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Service struct {
	Id           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Features     []string      `bson:"features" json:"features"`
	Icon         string        `bson:"icon" json:"icon"`
	Details      string        `bson:"details" json:"details"`
	DeliveryTime string        `bson:"deliveryTime" json:"deliveryTime"`
	Revisions    string        `bson:"revisions" json:"revisions"`
	Examples     []string      `bson:"examples" json:"examples"`
	UserID       bson.ObjectID `bson:"user" json:"user"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
