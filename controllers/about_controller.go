package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/dto"
	"github.com/visioncraft/agencybackend/middleware"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const aboutCollection = "aboutpages"

func activeTeamMembers(page models.AboutPage) []models.TeamMember {
	out := make([]models.TeamMember, 0, len(page.TeamMembers))
	for _, m := range page.TeamMembers {
		if m.IsActive {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func activeAchievements(page models.AboutPage) []models.Achievement {
	out := make([]models.Achievement, 0, len(page.Achievements))
	for _, a := range page.Achievements {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func activeBrandLogos(page models.AboutPage) []models.BrandLogo {
	out := make([]models.BrandLogo, 0, len(page.BrandLogos))
	for _, l := range page.BrandLogos {
		if l.IsActive {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func publishedAboutPage(c *gin.Context, db *database.Database) (models.AboutPage, bool) {
	var page models.AboutPage
	col := db.Collection(aboutCollection)
	if err := col.FindOne(c.Request.Context(), bson.M{"isPublished": true}).Decode(&page); err != nil {
		utils.Fail(c, http.StatusNotFound, "About page not found")
		return models.AboutPage{}, false
	}
	return page, true
}

func aboutPageByID(c *gin.Context, db *database.Database) (models.AboutPage, bool) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid about page id")
		return models.AboutPage{}, false
	}

	var page models.AboutPage
	col := db.Collection(aboutCollection)
	if err := col.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&page); err != nil {
		utils.Fail(c, http.StatusNotFound, "About page not found")
		return models.AboutPage{}, false
	}
	return page, true
}

func saveAboutPage(c *gin.Context, db *database.Database, page models.AboutPage) bool {
	user, _ := middleware.CurrentUser(c)
	now := time.Now().UTC()
	page.UpdatedBy = user.ID
	page.LastUpdated = now
	page.UpdatedAt = now

	col := db.Collection(aboutCollection)
	if _, err := col.ReplaceOne(c.Request.Context(), bson.M{"_id": page.Id}, page); err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return false
	}
	return true
}

// GetAboutPage serves the published page with inactive items filtered out
// and sections ordered for display.
func GetAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := publishedAboutPage(c, db)
		if !ok {
			return
		}

		page.TeamMembers = activeTeamMembers(page)
		page.Achievements = activeAchievements(page)
		page.BrandLogos = activeBrandLogos(page)

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

func GetTeamMembers(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := publishedAboutPage(c, db)
		if !ok {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"teamMembers": activeTeamMembers(page)}})
	}
}

func GetAchievements(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := publishedAboutPage(c, db)
		if !ok {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"achievements": activeAchievements(page)}})
	}
}

func GetBrandLogos(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := publishedAboutPage(c, db)
		if !ok {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"brandLogos": activeBrandLogos(page)}})
	}
}

func GetAgencyInfo(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := publishedAboutPage(c, db)
		if !ok {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"agencyInfo": page.AgencyInfo}})
	}
}

// ADMIN HANDLERS

func GetAllAboutPages(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection(aboutCollection)

		filter := bson.M{}
		if published, err := utils.ParseBoolQuery(c.Query("isPublished")); err == nil && published != nil {
			filter["isPublished"] = *published
		}

		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"), 10, 100)

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(skip).
			SetLimit(int64(limit))
		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.AboutPage, 0)
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
			"total":   total,
			"page":    page,
			"pages":   pages,
			"data":    gin.H{"aboutPages": items},
		})
	}
}

func CreateAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection(aboutCollection)

		var body dto.CreateAboutPageDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		published := true
		if body.IsPublished != nil {
			published = *body.IsPublished
		}

		// Only one page may be published at a time.
		if published {
			err := col.FindOne(ctx, bson.M{"isPublished": true}).Err()
			if err == nil {
				utils.Fail(c, http.StatusBadRequest, "There is already a published about page")
				return
			}
			if !errors.Is(err, mongo.ErrNoDocuments) {
				utils.Fail(c, http.StatusInternalServerError, err.Error())
				return
			}
		}

		user, _ := middleware.CurrentUser(c)
		now := time.Now().UTC()

		page := models.AboutPage{
			AgencyInfo:   body.AgencyInfo,
			TeamMembers:  ensureItemIDs(body.TeamMembers),
			Achievements: ensureAchievementIDs(body.Achievements),
			BrandLogos:   ensureBrandLogoIDs(body.BrandLogos),
			IsPublished:  published,
			LastUpdated:  now,
			UpdatedBy:    user.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if page.TeamMembers == nil {
			page.TeamMembers = []models.TeamMember{}
		}
		if page.Achievements == nil {
			page.Achievements = []models.Achievement{}
		}
		if page.BrandLogos == nil {
			page.BrandLogos = []models.BrandLogo{}
		}

		res, err := col.InsertOne(ctx, page)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		page.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

func GetAboutPageWithDetails(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

func UpdateAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection(aboutCollection)

		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		var body dto.UpdateAboutPageDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		if body.AgencyInfo != nil {
			page.AgencyInfo = *body.AgencyInfo
		}
		if body.TeamMembers != nil {
			page.TeamMembers = ensureItemIDs(*body.TeamMembers)
		}
		if body.Achievements != nil {
			page.Achievements = ensureAchievementIDs(*body.Achievements)
		}
		if body.BrandLogos != nil {
			page.BrandLogos = ensureBrandLogoIDs(*body.BrandLogos)
		}
		if body.IsPublished != nil {
			page.IsPublished = *body.IsPublished
			if page.IsPublished {
				// Publishing this page unpublishes the rest.
				_, err := col.UpdateMany(ctx,
					bson.M{"_id": bson.M{"$ne": page.Id}},
					bson.M{"$set": bson.M{"isPublished": false}})
				if err != nil {
					utils.Fail(c, http.StatusInternalServerError, err.Error())
					return
				}
			}
		}

		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

func DeleteAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection(aboutCollection)

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid about page id")
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		if res.DeletedCount == 0 {
			utils.Fail(c, http.StatusNotFound, "About page not found")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// TEAM MEMBER MANAGEMENT

func AddTeamMember(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		var body dto.TeamMemberDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		if !validSocialLinks(body.Back.Social) {
			utils.Fail(c, http.StatusBadRequest, "invalid social platform")
			return
		}

		member := models.TeamMember{
			Id:       bson.NewObjectID(),
			Name:     body.Name,
			Role:     body.Role,
			Front:    body.Front,
			Back:     body.Back,
			Order:    len(page.TeamMembers),
			IsActive: true,
		}
		if body.Order != nil {
			member.Order = *body.Order
		}
		if body.IsActive != nil {
			member.IsActive = *body.IsActive
		}

		page.TeamMembers = append(page.TeamMembers, member)
		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"teamMember": member}})
	}
}

func UpdateTeamMember(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		memberID, err := bson.ObjectIDFromHex(c.Param("teamMemberId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid team member id")
			return
		}

		var body dto.UpdateTeamMemberDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		idx := -1
		for i := range page.TeamMembers {
			if page.TeamMembers[i].Id == memberID {
				idx = i
				break
			}
		}
		if idx == -1 {
			utils.Fail(c, http.StatusNotFound, "Team member not found")
			return
		}

		m := &page.TeamMembers[idx]
		if body.Name != nil {
			m.Name = *body.Name
		}
		if body.Role != nil {
			m.Role = *body.Role
		}
		if body.Front != nil {
			m.Front = *body.Front
		}
		if body.Back != nil {
			if !validSocialLinks(body.Back.Social) {
				utils.Fail(c, http.StatusBadRequest, "invalid social platform")
				return
			}
			m.Back = *body.Back
		}
		if body.Order != nil {
			m.Order = *body.Order
		}
		if body.IsActive != nil {
			m.IsActive = *body.IsActive
		}

		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"teamMember": *m}})
	}
}

func DeleteTeamMember(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		memberID, err := bson.ObjectIDFromHex(c.Param("teamMemberId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid team member id")
			return
		}

		kept := page.TeamMembers[:0]
		found := false
		for _, m := range page.TeamMembers {
			if m.Id == memberID {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		if !found {
			utils.Fail(c, http.StatusNotFound, "Team member not found")
			return
		}
		page.TeamMembers = kept

		if !saveAboutPage(c, db, page) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// ACHIEVEMENT MANAGEMENT

func AddAchievement(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		var body dto.AchievementDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		achievement := models.Achievement{
			Id:          bson.NewObjectID(),
			Title:       body.Title,
			Description: body.Description,
			Year:        body.Year,
			Icon:        body.Icon,
			Image:       body.Image,
			Order:       len(page.Achievements),
			IsActive:    true,
		}
		if body.Order != nil {
			achievement.Order = *body.Order
		}
		if body.IsActive != nil {
			achievement.IsActive = *body.IsActive
		}

		page.Achievements = append(page.Achievements, achievement)
		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"achievement": achievement}})
	}
}

func UpdateAchievement(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		achievementID, err := bson.ObjectIDFromHex(c.Param("achievementId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid achievement id")
			return
		}

		var body dto.UpdateAchievementDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		idx := -1
		for i := range page.Achievements {
			if page.Achievements[i].Id == achievementID {
				idx = i
				break
			}
		}
		if idx == -1 {
			utils.Fail(c, http.StatusNotFound, "Achievement not found")
			return
		}

		a := &page.Achievements[idx]
		if body.Title != nil {
			a.Title = *body.Title
		}
		if body.Description != nil {
			a.Description = *body.Description
		}
		if body.Year != nil {
			a.Year = *body.Year
		}
		if body.Icon != nil {
			a.Icon = *body.Icon
		}
		if body.Image != nil {
			a.Image = *body.Image
		}
		if body.Order != nil {
			a.Order = *body.Order
		}
		if body.IsActive != nil {
			a.IsActive = *body.IsActive
		}

		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"achievement": *a}})
	}
}

func DeleteAchievement(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		achievementID, err := bson.ObjectIDFromHex(c.Param("achievementId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid achievement id")
			return
		}

		kept := page.Achievements[:0]
		found := false
		for _, a := range page.Achievements {
			if a.Id == achievementID {
				found = true
				continue
			}
			kept = append(kept, a)
		}
		if !found {
			utils.Fail(c, http.StatusNotFound, "Achievement not found")
			return
		}
		page.Achievements = kept

		if !saveAboutPage(c, db, page) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// BRAND LOGO MANAGEMENT

func AddBrandLogo(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		var body dto.BrandLogoDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		logo := models.BrandLogo{
			Id:       bson.NewObjectID(),
			Name:     body.Name,
			Logo:     body.Logo,
			Website:  body.Website,
			Order:    len(page.BrandLogos),
			IsActive: true,
		}
		if body.Order != nil {
			logo.Order = *body.Order
		}
		if body.IsActive != nil {
			logo.IsActive = *body.IsActive
		}

		page.BrandLogos = append(page.BrandLogos, logo)
		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"brandLogo": logo}})
	}
}

func UpdateBrandLogo(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		logoID, err := bson.ObjectIDFromHex(c.Param("brandLogoId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid brand logo id")
			return
		}

		var body dto.UpdateBrandLogoDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		idx := -1
		for i := range page.BrandLogos {
			if page.BrandLogos[i].Id == logoID {
				idx = i
				break
			}
		}
		if idx == -1 {
			utils.Fail(c, http.StatusNotFound, "Brand logo not found")
			return
		}

		l := &page.BrandLogos[idx]
		if body.Name != nil {
			l.Name = *body.Name
		}
		if body.Logo != nil {
			l.Logo = *body.Logo
		}
		if body.Website != nil {
			l.Website = *body.Website
		}
		if body.Order != nil {
			l.Order = *body.Order
		}
		if body.IsActive != nil {
			l.IsActive = *body.IsActive
		}

		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"brandLogo": *l}})
	}
}

func DeleteBrandLogo(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		logoID, err := bson.ObjectIDFromHex(c.Param("brandLogoId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid brand logo id")
			return
		}

		kept := page.BrandLogos[:0]
		found := false
		for _, l := range page.BrandLogos {
			if l.Id == logoID {
				found = true
				continue
			}
			kept = append(kept, l)
		}
		if !found {
			utils.Fail(c, http.StatusNotFound, "Brand logo not found")
			return
		}
		page.BrandLogos = kept

		if !saveAboutPage(c, db, page) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// ORDERING, TOGGLING, DUPLICATION, EXPORT/IMPORT

// UpdateAboutOrder rewrites the order of a section: item ids arrive in the
// desired display order.
func UpdateAboutOrder(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		var body dto.UpdateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		ids, err := utils.StringsToObjectIDs(body.ItemIds)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid item id in order list")
			return
		}
		position := make(map[bson.ObjectID]int, len(ids))
		for i, id := range ids {
			position[id] = i
		}

		switch c.Param("type") {
		case "team-members":
			for i := range page.TeamMembers {
				if pos, ok := position[page.TeamMembers[i].Id]; ok {
					page.TeamMembers[i].Order = pos
				}
			}
		case "achievements":
			for i := range page.Achievements {
				if pos, ok := position[page.Achievements[i].Id]; ok {
					page.Achievements[i].Order = pos
				}
			}
		case "brand-logos":
			for i := range page.BrandLogos {
				if pos, ok := position[page.BrandLogos[i].Id]; ok {
					page.BrandLogos[i].Order = pos
				}
			}
		default:
			utils.Fail(c, http.StatusBadRequest, "type must be one of: team-members, achievements, brand-logos")
			return
		}

		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

// ToggleAboutItem flips the isActive flag on a single section item.
func ToggleAboutItem(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		itemID, err := bson.ObjectIDFromHex(c.Param("itemId"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "invalid item id")
			return
		}

		found := false
		switch c.Param("type") {
		case "team-members":
			for i := range page.TeamMembers {
				if page.TeamMembers[i].Id == itemID {
					page.TeamMembers[i].IsActive = !page.TeamMembers[i].IsActive
					found = true
				}
			}
		case "achievements":
			for i := range page.Achievements {
				if page.Achievements[i].Id == itemID {
					page.Achievements[i].IsActive = !page.Achievements[i].IsActive
					found = true
				}
			}
		case "brand-logos":
			for i := range page.BrandLogos {
				if page.BrandLogos[i].Id == itemID {
					page.BrandLogos[i].IsActive = !page.BrandLogos[i].IsActive
					found = true
				}
			}
		default:
			utils.Fail(c, http.StatusBadRequest, "type must be one of: team-members, achievements, brand-logos")
			return
		}
		if !found {
			utils.Fail(c, http.StatusNotFound, "Item not found")
			return
		}

		if !saveAboutPage(c, db, page) {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

// DuplicateAboutPage copies a page as an unpublished draft with fresh item
// ids.
func DuplicateAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection(aboutCollection)

		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		user, _ := middleware.CurrentUser(c)
		now := time.Now().UTC()

		copyPage := page
		copyPage.Id = bson.NewObjectID()
		copyPage.IsPublished = false
		copyPage.UpdatedBy = user.ID
		copyPage.LastUpdated = now
		copyPage.CreatedAt = now
		copyPage.UpdatedAt = now
		copyPage.AgencyInfo.Name = page.AgencyInfo.Name + " (Copy)"
		copyPage.TeamMembers = reissueTeamMemberIDs(page.TeamMembers)
		copyPage.Achievements = reissueAchievementIDs(page.Achievements)
		copyPage.BrandLogos = reissueBrandLogoIDs(page.BrandLogos)

		if _, err := col.InsertOne(ctx, copyPage); err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"aboutPage": copyPage}})
	}
}

// ExportAboutPage returns the content sections without ids or bookkeeping
// fields, in the shape ImportAboutPage accepts.
func ExportAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := aboutPageByID(c, db)
		if !ok {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"data": gin.H{
				"aboutPage": dto.ImportAboutPageDTO{
					AgencyInfo:   page.AgencyInfo,
					TeamMembers:  page.TeamMembers,
					Achievements: page.Achievements,
					BrandLogos:   page.BrandLogos,
				},
			},
		})
	}
}

// ImportAboutPage creates a new unpublished draft from an export payload.
func ImportAboutPage(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := db.Collection(aboutCollection)

		var body dto.ImportAboutPageDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		user, _ := middleware.CurrentUser(c)
		now := time.Now().UTC()

		page := models.AboutPage{
			AgencyInfo:   body.AgencyInfo,
			TeamMembers:  reissueTeamMemberIDs(body.TeamMembers),
			Achievements: reissueAchievementIDs(body.Achievements),
			BrandLogos:   reissueBrandLogoIDs(body.BrandLogos),
			IsPublished:  false,
			LastUpdated:  now,
			UpdatedBy:    user.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		res, err := col.InsertOne(ctx, page)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		page.Id = res.InsertedID.(bson.ObjectID)

		utils.Success(c, http.StatusCreated, gin.H{"data": gin.H{"aboutPage": page}})
	}
}

func validSocialLinks(links []models.SocialLink) bool {
	for _, l := range links {
		if !models.AboutSocialPlatforms[l.Platform] {
			return false
		}
	}
	return true
}

func ensureItemIDs(members []models.TeamMember) []models.TeamMember {
	for i := range members {
		if members[i].Id.IsZero() {
			members[i].Id = bson.NewObjectID()
		}
	}
	return members
}

func ensureAchievementIDs(items []models.Achievement) []models.Achievement {
	for i := range items {
		if items[i].Id.IsZero() {
			items[i].Id = bson.NewObjectID()
		}
	}
	return items
}

func ensureBrandLogoIDs(items []models.BrandLogo) []models.BrandLogo {
	for i := range items {
		if items[i].Id.IsZero() {
			items[i].Id = bson.NewObjectID()
		}
	}
	return items
}

func reissueTeamMemberIDs(members []models.TeamMember) []models.TeamMember {
	out := make([]models.TeamMember, len(members))
	copy(out, members)
	for i := range out {
		out[i].Id = bson.NewObjectID()
	}
	return out
}

func reissueAchievementIDs(items []models.Achievement) []models.Achievement {
	out := make([]models.Achievement, len(items))
	copy(out, items)
	for i := range out {
		out[i].Id = bson.NewObjectID()
	}
	return out
}

func reissueBrandLogoIDs(items []models.BrandLogo) []models.BrandLogo {
	out := make([]models.BrandLogo, len(items))
	copy(out, items)
	for i := range out {
		out[i].Id = bson.NewObjectID()
	}
	return out
}
