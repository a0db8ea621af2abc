package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/dto"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateStatistic(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("statistics")

		var body dto.CreateStatisticDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		statType := body.Type
		if statType == "" {
			statType = "number"
		}
		if !models.StatisticTypes[statType] {
			utils.Fail(c, http.StatusBadRequest, "invalid statistic type")
			return
		}

		active := true
		if body.IsActive != nil {
			active = *body.IsActive
		}

		now := time.Now().UTC()
		doc := models.Statistic{
			Title:        strings.TrimSpace(body.Title),
			Slug:         utils.GenerateSlug(body.Title),
			Value:        strings.TrimSpace(body.Value),
			Description:  body.Description,
			Icon:         body.Icon,
			Type:         statType,
			IsActive:     active,
			DisplayOrder: body.DisplayOrder,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				utils.Fail(c, http.StatusBadRequest, "Statistic with this title already exists")
				return
			}
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		doc.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"statistic": doc}})
	}
}

func GetAllStatistics(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		statisticsList(c, db, bson.M{})
	}
}

func GetActiveStatistics(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		statisticsList(c, db, bson.M{"isActive": true})
	}
}

func statisticsList(c *gin.Context, db *database.Database, filter bson.M) {
	ctx := c.Request.Context()
	col := db.Collection("statistics")

	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	items := make([]models.Statistic, 0)
	if err := cursor.All(ctx, &items); err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"results": len(items),
		"data":    gin.H{"statistics": items},
	})
}

func GetStatistic(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("statistics")

		var stat models.Statistic
		if err := col.FindOne(ctx, bson.M{"slug": c.Param("slug")}).Decode(&stat); err != nil {
			utils.Fail(c, http.StatusNotFound, "No statistic found with that slug")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"statistic": stat}})
	}
}

func UpdateStatistic(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("statistics")

		var body dto.UpdateStatisticDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Title != nil {
			t := strings.TrimSpace(*body.Title)
			if t == "" {
				utils.Fail(c, http.StatusBadRequest, "title cannot be empty")
				return
			}
			set["title"] = t
			set["slug"] = utils.GenerateSlug(t)
		}
		if body.Value != nil {
			set["value"] = strings.TrimSpace(*body.Value)
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.Icon != nil {
			set["icon"] = *body.Icon
		}
		if body.Type != nil {
			if !models.StatisticTypes[*body.Type] {
				utils.Fail(c, http.StatusBadRequest, "invalid statistic type")
				return
			}
			set["type"] = *body.Type
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}
		if body.DisplayOrder != nil {
			set["displayOrder"] = *body.DisplayOrder
		}

		if len(set) == 1 {
			utils.Fail(c, http.StatusBadRequest, "no updates provided")
			return
		}

		res := col.FindOneAndUpdate(ctx, bson.M{"slug": c.Param("slug")}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var stat models.Statistic
		if err := res.Decode(&stat); err != nil {
			if utils.IsDuplicateKey(err) {
				utils.Fail(c, http.StatusBadRequest, "Statistic with this title already exists")
				return
			}
			utils.Fail(c, http.StatusNotFound, "No statistic found with that slug")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"statistic": stat}})
	}
}

func DeleteStatistic(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("statistics")

		res, err := col.DeleteOne(ctx, bson.M{"slug": c.Param("slug")})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		if res.DeletedCount == 0 {
			utils.Fail(c, http.StatusNotFound, "No statistic found with that slug")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// ToggleStatistic flips the isActive flag.
func ToggleStatistic(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("statistics")

		var stat models.Statistic
		if err := col.FindOne(ctx, bson.M{"slug": c.Param("slug")}).Decode(&stat); err != nil {
			utils.Fail(c, http.StatusNotFound, "No statistic found with that slug")
			return
		}

		res := col.FindOneAndUpdate(ctx,
			bson.M{"_id": stat.Id},
			bson.M{"$set": bson.M{"isActive": !stat.IsActive, "updatedAt": time.Now().UTC()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		if err := res.Decode(&stat); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"statistic": stat}})
	}
}
