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

// CreateCategory inserts a category; the slug is derived from the name.
func CreateCategory(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("categories")

		var body dto.CreateCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		name := strings.TrimSpace(body.Name)
		shown := true
		if body.IsShownInCategory != nil {
			shown = *body.IsShownInCategory
		}

		now := time.Now().UTC()
		doc := models.Category{
			Name:              name,
			Slug:              utils.GenerateSlug(name),
			IsShownInCategory: shown,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				utils.Fail(c, http.StatusBadRequest, "Category with this name already exists")
				return
			}
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		doc.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"category": doc}})
	}
}

func GetAllCategories(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("categories")

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"), 50, 200)

		filter := bson.M{}
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			filter["name"] = bson.M{"$regex": q, "$options": "i"}
		}
		if shown, err := utils.ParseBoolQuery(c.Query("isShownInCategory")); err == nil && shown != nil {
			filter["isShownInCategory"] = *shown
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "name", Value: 1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Category, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data": gin.H{
				"categories": items,
				"pagination": gin.H{"current": page, "limit": limit, "total": total},
			},
		})
	}
}

func GetCategory(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("categories")

		slug := strings.TrimSpace(c.Param("slug"))

		var cat models.Category
		if err := col.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat); err != nil {
			utils.Fail(c, http.StatusNotFound, "No category found with that slug")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"category": cat}})
	}
}

// UpdateCategory patches by slug; a name change regenerates the slug.
func UpdateCategory(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("categories")

		slug := strings.TrimSpace(c.Param("slug"))

		var body dto.UpdateCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Name != nil {
			v := strings.TrimSpace(*body.Name)
			if v == "" {
				utils.Fail(c, http.StatusBadRequest, "name cannot be empty")
				return
			}
			set["name"] = v
			set["slug"] = utils.GenerateSlug(v)
		}
		if body.IsShownInCategory != nil {
			set["isShownInCategory"] = *body.IsShownInCategory
		}

		if len(set) == 1 {
			utils.Fail(c, http.StatusBadRequest, "no updates provided")
			return
		}

		res := col.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var cat models.Category
		if err := res.Decode(&cat); err != nil {
			if utils.IsDuplicateKey(err) {
				utils.Fail(c, http.StatusBadRequest, "Category with this name already exists")
				return
			}
			utils.Fail(c, http.StatusNotFound, "No category found with that slug")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"category": cat}})
	}
}

func DeleteCategory(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("categories")

		slug := strings.TrimSpace(c.Param("slug"))

		res, err := col.DeleteOne(ctx, bson.M{"slug": slug})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		if res.DeletedCount == 0 {
			utils.Fail(c, http.StatusNotFound, "No category found with that slug")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
