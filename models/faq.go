package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FAQCategories is the allowed category set for FAQs.
var FAQCategories = map[string]bool{
	"general":       true,
	"pricing":       true,
	"turnaround":    true,
	"revisions":     true,
	"file-formats":  true,
	"process":       true,
	"quality":       true,
	"rights-usage":  true,
	"emergency":     true,
	"collaboration": true,
}

type FAQ struct {
	Id              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Question        string        `bson:"question" json:"question"`
	Answer          string        `bson:"answer" json:"answer"`
	Slug            string        `bson:"slug" json:"slug"`
	Category        string        `bson:"category" json:"category"`
	Priority        int           `bson:"priority" json:"priority"`
	IsActive        bool          `bson:"isActive" json:"isActive"`
	Views           int64         `bson:"views" json:"views"`
	HelpfulCount    int64         `bson:"helpfulCount" json:"helpfulCount"`
	NotHelpfulCount int64         `bson:"notHelpfulCount" json:"notHelpfulCount"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}
