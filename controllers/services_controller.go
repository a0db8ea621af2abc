package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/dto"
	"github.com/visioncraft/agencybackend/middleware"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateService(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("services")

		var body dto.CreateServiceDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		user, _ := middleware.CurrentUser(c)

		now := time.Now().UTC()
		doc := models.Service{
			Title:        body.Title,
			Description:  body.Description,
			Features:     body.Features,
			Icon:         body.Icon,
			Details:      body.Details,
			DeliveryTime: body.DeliveryTime,
			Revisions:    body.Revisions,
			Examples:     body.Examples,
			UserID:       user.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		doc.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"service": doc}})
	}
}

func GetAllServices(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("services")

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Service, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data":    gin.H{"services": items},
		})
	}
}

func GetService(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("services")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid service id")
			return
		}

		var svc models.Service
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
			utils.Fail(c, http.StatusNotFound, "No service found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"service": svc}})
	}
}

func UpdateService(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("services")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid service id")
			return
		}

		var body dto.UpdateServiceDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Title != nil {
			set["title"] = *body.Title
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.Features != nil {
			set["features"] = *body.Features
		}
		if body.Icon != nil {
			set["icon"] = *body.Icon
		}
		if body.Details != nil {
			set["details"] = *body.Details
		}
		if body.DeliveryTime != nil {
			set["deliveryTime"] = *body.DeliveryTime
		}
		if body.Revisions != nil {
			set["revisions"] = *body.Revisions
		}
		if body.Examples != nil {
			set["examples"] = *body.Examples
		}

		if len(set) == 1 {
			utils.Fail(c, http.StatusBadRequest, "no updates provided")
			return
		}

		res := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var svc models.Service
		if err := res.Decode(&svc); err != nil {
			utils.Fail(c, http.StatusNotFound, "No service found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"service": svc}})
	}
}

func DeleteService(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("services")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid service id")
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		if res.DeletedCount == 0 {
			utils.Fail(c, http.StatusNotFound, "No service found with that ID")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
