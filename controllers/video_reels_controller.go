package controllers

import (
	"net/http"
	"strings"
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

func GetAllVideoReels(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("videoreels")

		filter := bson.M{}
		if cat := strings.TrimSpace(c.Query("category")); cat != "" {
			filter["category"] = cat
		}
		if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
			filter["tags"] = tag
		}
		// isBest=true narrows to featured reels; anything else returns all.
		if best, err := utils.ParseBoolQuery(c.Query("isBest")); err == nil && best != nil && *best {
			filter["isBest"] = true
		}

		sortBy := bson.D{{Key: "createdAt", Value: -1}} // default: newest first
		if c.Query("sort") == "title" {
			sortBy = bson.D{{Key: "title", Value: 1}}
		}

		opts := options.Find().SetSort(sortBy)
		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.VideoReel, 0)
		if err := cursor.All(ctx, &items); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"results": len(items),
			"data":    gin.H{"videoReels": items},
		})
	}
}

func GetVideoReel(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("videoreels")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid video reel id")
			return
		}

		var reel models.VideoReel
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&reel); err != nil {
			utils.Fail(c, http.StatusNotFound, "No video reel found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"videoReel": reel}})
	}
}

func CreateVideoReel(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("videoreels")

		var body dto.CreateVideoReelDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		user, _ := middleware.CurrentUser(c)

		doc := models.VideoReel{
			Title:            body.Title,
			Description:      body.Description,
			VideoURL:         body.VideoURL,
			VideoCloudID:     body.VideoCloudID,
			ThumbnailURL:     body.ThumbnailURL,
			ThumbnailCloudID: body.ThumbnailCloudID,
			Category:         body.Category,
			Tags:             body.Tags,
			IsBest:           body.IsBest,
			UserID:           user.ID,
			CreatedAt:        time.Now().UTC(),
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		doc.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"videoReel": doc}})
	}
}

// UploadVideoReelMedia accepts multipart "video" and/or "thumbnail" files,
// stores them in R2 and patches the reel's URLs.
func UploadVideoReelMedia(db *database.Database, r2 *utils.R2Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid video reel id")
			return
		}

		set := bson.M{}
		uploaded := make([]string, 0, 2)

		if fh, err := c.FormFile("video"); err == nil {
			upload, err := utils.UploadMediaToR2(ctx, r2, "reels", id.Hex(), fh)
			if err != nil {
				utils.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			set["videoUrl"] = upload.PublicURL
			set["videoCloudId"] = upload.ObjectName
			uploaded = append(uploaded, upload.ObjectName)
		}
		if fh, err := c.FormFile("thumbnail"); err == nil {
			upload, err := utils.UploadMediaToR2(ctx, r2, "reels", id.Hex(), fh)
			if err != nil {
				_ = utils.DeleteR2Objects(ctx, r2, uploaded)
				utils.Fail(c, http.StatusBadRequest, err.Error())
				return
			}
			set["thumbnailUrl"] = upload.PublicURL
			set["thumbnailCloudId"] = upload.ObjectName
			uploaded = append(uploaded, upload.ObjectName)
		}

		if len(set) == 0 {
			utils.Fail(c, http.StatusBadRequest, "Please attach a video or thumbnail file")
			return
		}

		col := db.Collection("videoreels")
		res := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After))

		var reel models.VideoReel
		if err := res.Decode(&reel); err != nil {
			_ = utils.DeleteR2Objects(ctx, r2, uploaded)
			utils.Fail(c, http.StatusNotFound, "No video reel found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"videoReel": reel}})
	}
}

func UpdateVideoReel(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("videoreels")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid video reel id")
			return
		}

		var body dto.UpdateVideoReelDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		set := bson.M{}
		if body.Title != nil {
			set["title"] = *body.Title
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.VideoURL != nil {
			set["videoUrl"] = *body.VideoURL
		}
		if body.VideoCloudID != nil {
			set["videoCloudId"] = *body.VideoCloudID
		}
		if body.ThumbnailURL != nil {
			set["thumbnailUrl"] = *body.ThumbnailURL
		}
		if body.ThumbnailCloudID != nil {
			set["thumbnailCloudId"] = *body.ThumbnailCloudID
		}
		if body.Category != nil {
			set["category"] = *body.Category
		}
		if body.Tags != nil {
			set["tags"] = *body.Tags
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

		var reel models.VideoReel
		if err := res.Decode(&reel); err != nil {
			utils.Fail(c, http.StatusNotFound, "No video reel found with that ID")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"videoReel": reel}})
	}
}

func DeleteVideoReel(db *database.Database, r2 *utils.R2Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection("videoreels")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid video reel id")
			return
		}

		var reel models.VideoReel
		if err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&reel); err != nil {
			utils.Fail(c, http.StatusNotFound, "No video reel found with that ID")
			return
		}

		if r2 != nil {
			_ = utils.DeleteR2Objects(ctx, r2, []string{reel.VideoCloudID, reel.ThumbnailCloudID})
		}

		c.Status(http.StatusNoContent)
	}
}
