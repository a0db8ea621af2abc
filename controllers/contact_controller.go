package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/dto"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func applyContactPatch(contact *models.Contact, body dto.UpsertContactDTO) {
	if body.Email != nil {
		contact.Email = *body.Email
	}
	if body.Phone != nil {
		contact.Phone = *body.Phone
	}
	if body.Address != nil {
		if body.Address.Street != nil {
			contact.Address.Street = *body.Address.Street
		}
		if body.Address.City != nil {
			contact.Address.City = *body.Address.City
		}
		if body.Address.State != nil {
			contact.Address.State = *body.Address.State
		}
		if body.Address.ZipCode != nil {
			contact.Address.ZipCode = *body.Address.ZipCode
		}
		if body.Address.Country != nil {
			contact.Address.Country = *body.Address.Country
		}
	}
	if body.SocialLinks != nil {
		if body.SocialLinks.Facebook != nil {
			contact.SocialLinks.Facebook = *body.SocialLinks.Facebook
		}
		if body.SocialLinks.Twitter != nil {
			contact.SocialLinks.Twitter = *body.SocialLinks.Twitter
		}
		if body.SocialLinks.Instagram != nil {
			contact.SocialLinks.Instagram = *body.SocialLinks.Instagram
		}
		if body.SocialLinks.LinkedIn != nil {
			contact.SocialLinks.LinkedIn = *body.SocialLinks.LinkedIn
		}
		if body.SocialLinks.YouTube != nil {
			contact.SocialLinks.YouTube = *body.SocialLinks.YouTube
		}
	}
	if body.IsActive != nil {
		contact.IsActive = *body.IsActive
	}
}

// CreateOrUpdateContact maintains the contact card as a singleton: update
// the existing document if one exists, create it otherwise.
func CreateOrUpdateContact(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("contacts")

		var body dto.UpsertContactDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		now := time.Now().UTC()

		var contact models.Contact
		err := col.FindOne(ctx, bson.M{}).Decode(&contact)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				utils.Fail(c, http.StatusInternalServerError, err.Error())
				return
			}
			contact = models.Contact{
				IsActive:  true,
				Address:   models.Address{Country: "United States"},
				CreatedAt: now,
			}
			applyContactPatch(&contact, body)
			contact.UpdatedAt = now

			res, err := col.InsertOne(ctx, contact)
			if err != nil {
				utils.Fail(c, http.StatusInternalServerError, err.Error())
				return
			}
			contact.Id = res.InsertedID.(bson.ObjectID)

			utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"contact": contact}})
			return
		}

		applyContactPatch(&contact, body)
		contact.UpdatedAt = now

		if _, err := col.ReplaceOne(ctx, bson.M{"_id": contact.Id}, contact); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"contact": contact}})
	}
}

// GetContactInfo returns the active contact card, or null if none exists.
func GetContactInfo(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("contacts")

		var contact models.Contact
		err := col.FindOne(ctx, bson.M{"isActive": true}).Decode(&contact)
		if err != nil {
			utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"contact": nil}})
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"contact": contact}})
	}
}

// GetPublicContactInfo always returns a full structure so the frontend can
// render without null checks.
func GetPublicContactInfo(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("contacts")

		var contact models.Contact
		err := col.FindOne(ctx, bson.M{"isActive": true}).Decode(&contact)
		if err != nil {
			contact = models.Contact{
				Address: models.Address{Country: "United States"},
			}
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"contact": contact}})
	}
}

func GetAllContactEntries(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("contacts")

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Contact, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data":    gin.H{"contacts": items},
		})
	}
}

func DeleteContact(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("contacts")

		var contact models.Contact
		if err := col.FindOneAndDelete(ctx, bson.M{}).Decode(&contact); err != nil {
			utils.Success(c, http.StatusOK, gin.H{
				"message": "No contact information found to delete",
				"data":    nil,
			})
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"message": "Contact information deleted successfully",
			"data":    nil,
		})
	}
}
