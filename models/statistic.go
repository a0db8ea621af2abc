package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatisticTypes is the allowed value-type set for statistics.
var StatisticTypes = map[string]bool{
	"number":     true,
	"percentage": true,
	"text":       true,
	"rating":     true,
}

type Statistic struct {
	Id           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Slug         string        `bson:"slug" json:"slug"`
	Value        string        `bson:"value" json:"value"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Icon         string        `bson:"icon,omitempty" json:"icon,omitempty"`
	Type         string        `bson:"type" json:"type"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	DisplayOrder int           `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}
