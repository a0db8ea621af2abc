package controllers

import (
	"fmt"
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

func faqSlug(question string) string {
	s := utils.GenerateSlug(question)
	if len(s) > 50 {
		s = strings.Trim(s[:50], "-")
	}
	return s
}

func CreateFAQ(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		var body dto.CreateFAQDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		category := body.Category
		if category == "" {
			category = "general"
		}
		if !models.FAQCategories[category] {
			utils.Fail(c, http.StatusBadRequest, "invalid FAQ category")
			return
		}

		priority := 0
		if body.Priority != nil {
			priority = *body.Priority
		}
		active := true
		if body.IsActive != nil {
			active = *body.IsActive
		}

		now := time.Now().UTC()
		doc := models.FAQ{
			Question:  strings.TrimSpace(body.Question),
			Answer:    strings.TrimSpace(body.Answer),
			Slug:      faqSlug(body.Question),
			Category:  category,
			Priority:  priority,
			IsActive:  active,
			CreatedAt: now,
			UpdatedAt: now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				utils.Fail(c, http.StatusBadRequest, "FAQ with this question already exists")
				return
			}
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		doc.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"faq": doc}})
	}
}

func GetAllFAQs(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		filter := bson.M{}
		if cat := c.Query("category"); cat != "" {
			filter["category"] = cat
		}
		if active, err := utils.ParseBoolQuery(c.Query("isActive")); err == nil && active != nil {
			filter["isActive"] = *active
		} else {
			// Default to active FAQs only for public access
			filter["isActive"] = true
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"question": bson.M{"$regex": search, "$options": "i"}},
				{"answer": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		var sortBy bson.D
		switch c.Query("sort") {
		case "popular":
			sortBy = bson.D{{Key: "views", Value: -1}, {Key: "helpfulCount", Value: -1}}
		case "recent":
			sortBy = bson.D{{Key: "createdAt", Value: -1}}
		default:
			sortBy = bson.D{{Key: "priority", Value: -1}, {Key: "createdAt", Value: -1}}
		}

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"), 10, 100)

		opts := options.Find().SetSort(sortBy).SetSkip(skip).SetLimit(int64(limit))
		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.FAQ, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		pages := (total + int64(limit) - 1) / int64(limit)

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data": gin.H{
				"faqs":       items,
				"pagination": gin.H{"current": page, "pages": pages, "total": total},
			},
		})
	}
}

// GetFAQ fetches by slug and counts the view.
func GetFAQ(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		res := col.FindOneAndUpdate(ctx,
			bson.M{"slug": c.Param("slug")},
			bson.M{"$inc": bson.M{"views": 1}},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var faq models.FAQ
		if err := res.Decode(&faq); err != nil {
			utils.Fail(c, http.StatusNotFound, "No FAQ found with that slug")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"faq": faq}})
	}
}

func UpdateFAQ(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		var body dto.UpdateFAQDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		set := bson.M{"updatedAt": time.Now().UTC()}
		if body.Question != nil {
			q := strings.TrimSpace(*body.Question)
			if q == "" {
				utils.Fail(c, http.StatusBadRequest, "question cannot be empty")
				return
			}
			set["question"] = q
			set["slug"] = faqSlug(q)
		}
		if body.Answer != nil {
			set["answer"] = strings.TrimSpace(*body.Answer)
		}
		if body.Category != nil {
			if !models.FAQCategories[*body.Category] {
				utils.Fail(c, http.StatusBadRequest, "invalid FAQ category")
				return
			}
			set["category"] = *body.Category
		}
		if body.Priority != nil {
			set["priority"] = *body.Priority
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}

		if len(set) == 1 {
			utils.Fail(c, http.StatusBadRequest, "no updates provided")
			return
		}

		res := col.FindOneAndUpdate(ctx, bson.M{"slug": c.Param("slug")}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var faq models.FAQ
		if err := res.Decode(&faq); err != nil {
			if utils.IsDuplicateKey(err) {
				utils.Fail(c, http.StatusBadRequest, "FAQ with this question already exists")
				return
			}
			utils.Fail(c, http.StatusNotFound, "No FAQ found with that slug")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"faq": faq}})
	}
}

func DeleteFAQ(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		res, err := col.DeleteOne(ctx, bson.M{"slug": c.Param("slug")})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		if res.DeletedCount == 0 {
			utils.Fail(c, http.StatusNotFound, "No FAQ found with that slug")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func markFAQFeedback(c *gin.Context, db *database.Database, field string) {
	ctx := c.Request.Context()
	col := db.Collection("faqs")

	res := col.FindOneAndUpdate(ctx,
		bson.M{"slug": c.Param("slug")},
		bson.M{"$inc": bson.M{field: 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var faq models.FAQ
	if err := res.Decode(&faq); err != nil {
		utils.Fail(c, http.StatusNotFound, "No FAQ found with that slug")
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"data": gin.H{
			"helpfulCount":    faq.HelpfulCount,
			"notHelpfulCount": faq.NotHelpfulCount,
		},
	})
}

func MarkFAQHelpful(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		markFAQFeedback(c, db, "helpfulCount")
	}
}

func MarkFAQNotHelpful(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		markFAQFeedback(c, db, "notHelpfulCount")
	}
}

func GetFAQsByCategory(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		category := c.Param("category")
		if !models.FAQCategories[category] {
			utils.Fail(c, http.StatusBadRequest, fmt.Sprintf("invalid FAQ category %q", category))
			return
		}

		opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "createdAt", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{"category": category, "isActive": true}, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.FAQ, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data":    gin.H{"faqs": items, "category": category},
		})
	}
}

func GetPopularFAQs(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("faqs")

		limit := utils.ParseIntDefault(c.Query("limit"), 10)
		if limit < 1 || limit > 100 {
			limit = 10
		}

		opts := options.Find().
			SetSort(bson.D{{Key: "views", Value: -1}, {Key: "helpfulCount", Value: -1}}).
			SetLimit(int64(limit))
		cursor, err := col.Find(ctx, bson.M{"isActive": true}, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.FAQ, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data":    gin.H{"faqs": items},
		})
	}
}
