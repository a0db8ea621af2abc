package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// Contact is a singleton document: the site shows one active contact card.
type Contact struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"id,omitzero"`
	Email       string        `bson:"email" json:"email"`
	Phone       string        `bson:"phone" json:"phone"`
	Address     Address       `bson:"address" json:"address"`
	SocialLinks SocialLinks   `bson:"socialLinks" json:"socialLinks"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}
