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

func listReviews(c *gin.Context, db *database.Database, filter bson.M) {
	ctx := c.Request.Context()
	col := db.Collection("reviews")

	if best, err := utils.ParseBoolQuery(c.Query("isBest")); err == nil && best != nil && *best {
		filter["isBest"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	items := make([]models.Review, 0)
	if err := cursor.All(ctx, &items); err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"results": len(items),
		"data":    gin.H{"reviews": items},
	})
}

func GetAllReviews(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		listReviews(c, db, bson.M{})
	}
}

// GetVideoReviews returns only reviews that carry a video clip.
func GetVideoReviews(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		listReviews(c, db, bson.M{"video": bson.M{"$exists": true, "$ne": ""}})
	}
}

// GetTextReviews returns only reviews without a video clip.
func GetTextReviews(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		listReviews(c, db, bson.M{"$or": []bson.M{
			{"video": bson.M{"$exists": false}},
			{"video": ""},
		}})
	}
}

func CreateReview(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("reviews")

		var body dto.CreateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		user, _ := middleware.CurrentUser(c)

		doc := models.Review{
			Content:   body.Content,
			Rating:    body.Rating,
			UserName:  body.UserName,
			Video:     body.Video,
			VideoID:   body.VideoID,
			IsBest:    body.IsBest,
			UserID:    user.ID,
			CreatedAt: time.Now().UTC(),
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		doc.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"review": doc}})
	}
}

// UploadReviewVideo stores a client testimonial clip in R2 and returns the
// public URL + object name for the review document.
func UploadReviewVideo(db *database.Database, r2 *utils.R2Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid review id")
			return
		}

		fileHeader, err := c.FormFile("video")
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Please attach a video file")
			return
		}

		upload, err := utils.UploadMediaToR2(c.Request.Context(), r2, "reviews", id.Hex(), fileHeader)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		col := db.Collection("reviews")
		res := col.FindOneAndUpdate(c.Request.Context(), bson.M{"_id": id}, bson.M{
			"$set": bson.M{"video": upload.PublicURL, "videoId": upload.ObjectName},
		}, options.FindOneAndUpdate().SetReturnDocument(options.After))

		var review models.Review
		if err := res.Decode(&review); err != nil {
			// The object is orphaned if the review vanished; best-effort cleanup.
			_ = utils.DeleteR2Objects(c.Request.Context(), r2, []string{upload.ObjectName})
			utils.Fail(c, http.StatusNotFound, "No review found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"review": review}})
	}
}

func UpdateReview(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("reviews")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid review id")
			return
		}

		var body dto.UpdateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		set := bson.M{}
		if body.Content != nil {
			set["content"] = *body.Content
		}
		if body.Rating != nil {
			set["rating"] = *body.Rating
		}
		if body.UserName != nil {
			set["userName"] = *body.UserName
		}
		if body.Video != nil {
			set["video"] = *body.Video
		}
		if body.VideoID != nil {
			set["videoId"] = *body.VideoID
		}
		if body.IsBest != nil {
			set["isBest"] = *body.IsBest
		}

		if len(set) == 0 {
			utils.Fail(c, http.StatusBadRequest, "no updates provided")
			return
		}

		res := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var review models.Review
		if err := res.Decode(&review); err != nil {
			utils.Fail(c, http.StatusNotFound, "No review found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"review": review}})
	}
}

func DeleteReview(db *database.Database, r2 *utils.R2Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("reviews")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid review id")
			return
		}

		var review models.Review
		if err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
			utils.Fail(c, http.StatusNotFound, "No review found with that ID")
			return
		}

		if review.VideoID != "" && r2 != nil {
			_ = utils.DeleteR2Objects(ctx, r2, []string{review.VideoID})
		}

		c.Status(http.StatusNoContent)
	}
}
