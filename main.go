package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/visioncraft/agencybackend/auth"
	"github.com/visioncraft/agencybackend/controllers"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/middleware"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	signer := auth.NewJWTSigner(utils.JWTSecret(), utils.TokenTTL())
	hasher := auth.BcryptHasher{}

	//seeding admin user
	if err := utils.SeedAdminUser(ctx, db.Collection("users"), hasher); err != nil {
		log.Fatal(err)
	}

	// R2 is optional: media upload routes stay off when it is not configured.
	r2, err := utils.NewR2Client(ctx)
	if err != nil {
		log.Printf("R2 storage disabled: %v", err)
	}

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	protect := middleware.Protect(db, signer)
	adminOnly := middleware.RestrictTo(models.RoleAdmin)

	api := r.Group("/api/v1")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", controllers.Login(db, signer, hasher))
		authRoutes.POST("/get-security-question", controllers.GetSecurityQuestion(db))
		authRoutes.POST("/verify-security-answer", controllers.VerifySecurityAnswer(db, hasher))
		authRoutes.POST("/reset-password-with-security", controllers.ResetPasswordWithSecurity(db, signer, hasher))
		authRoutes.POST("/verify-token", controllers.VerifyToken(db, signer))

		authRoutes.GET("/me", protect, controllers.GetCurrentUser())
		authRoutes.PATCH("/updatePassword", protect, controllers.UpdatePassword(db, signer, hasher))
		authRoutes.POST("/logout", protect, controllers.Logout(db))
		authRoutes.POST("/set-security-question", protect, controllers.SetSecurityQuestion(db, signer, hasher))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", controllers.GetAllCategories(db))
		categories.GET("/:slug", controllers.GetCategory(db))

		categories.POST("", protect, adminOnly, controllers.CreateCategory(db))
		categories.PATCH("/:slug", protect, adminOnly, controllers.UpdateCategory(db))
		categories.DELETE("/:slug", protect, adminOnly, controllers.DeleteCategory(db))
	}

	services := api.Group("/services")
	{
		services.GET("", controllers.GetAllServices(db))
		services.GET("/:id", controllers.GetService(db))

		services.POST("", protect, adminOnly, controllers.CreateService(db))
		services.PATCH("/:id", protect, adminOnly, controllers.UpdateService(db))
		services.DELETE("/:id", protect, adminOnly, controllers.DeleteService(db))
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", controllers.GetAllReviews(db))
		reviews.GET("/videos", controllers.GetVideoReviews(db))
		reviews.GET("/text", controllers.GetTextReviews(db))

		reviews.POST("", protect, adminOnly, controllers.CreateReview(db))
		reviews.PATCH("/:id", protect, adminOnly, controllers.UpdateReview(db))
		reviews.DELETE("/:id", protect, adminOnly, controllers.DeleteReview(db, r2))
		if r2 != nil {
			reviews.POST("/:id/video", protect, adminOnly, controllers.UploadReviewVideo(db, r2))
		}
	}

	faqs := api.Group("/faqs")
	{
		faqs.GET("", controllers.GetAllFAQs(db))
		faqs.GET("/popular", controllers.GetPopularFAQs(db))
		faqs.GET("/category/:category", controllers.GetFAQsByCategory(db))
		faqs.GET("/:slug", controllers.GetFAQ(db))
		faqs.POST("/:slug/helpful", controllers.MarkFAQHelpful(db))
		faqs.POST("/:slug/not-helpful", controllers.MarkFAQNotHelpful(db))

		faqs.POST("", protect, adminOnly, controllers.CreateFAQ(db))
		faqs.PATCH("/:slug", protect, adminOnly, controllers.UpdateFAQ(db))
		faqs.DELETE("/:slug", protect, adminOnly, controllers.DeleteFAQ(db))
	}

	statistics := api.Group("/statistics")
	{
		statistics.GET("", controllers.GetAllStatistics(db))
		statistics.GET("/active", controllers.GetActiveStatistics(db))
		statistics.GET("/:slug", controllers.GetStatistic(db))

		statistics.POST("", protect, adminOnly, controllers.CreateStatistic(db))
		statistics.PATCH("/:slug", protect, adminOnly, controllers.UpdateStatistic(db))
		statistics.DELETE("/:slug", protect, adminOnly, controllers.DeleteStatistic(db))
		statistics.PATCH("/:slug/toggle", protect, adminOnly, controllers.ToggleStatistic(db))
	}

	contact := api.Group("/contact")
	{
		contact.GET("", controllers.GetContactInfo(db))
		contact.GET("/public", controllers.GetPublicContactInfo(db))

		contact.POST("", protect, adminOnly, controllers.CreateOrUpdateContact(db))
		contact.PATCH("", protect, adminOnly, controllers.CreateOrUpdateContact(db))
		contact.DELETE("", protect, adminOnly, controllers.DeleteContact(db))
		contact.GET("/all", protect, adminOnly, controllers.GetAllContactEntries(db))
	}

	reels := api.Group("/video-reels")
	{
		reels.GET("", controllers.GetAllVideoReels(db))
		reels.GET("/:id", controllers.GetVideoReel(db))

		reels.POST("", protect, adminOnly, controllers.CreateVideoReel(db))
		reels.PATCH("/:id", protect, adminOnly, controllers.UpdateVideoReel(db))
		reels.DELETE("/:id", protect, adminOnly, controllers.DeleteVideoReel(db, r2))
		if r2 != nil {
			reels.POST("/:id/media", protect, adminOnly, controllers.UploadVideoReelMedia(db, r2))
		}
	}

	about := api.Group("/about")
	{
		about.GET("", controllers.GetAboutPage(db))
		about.GET("/team-members", controllers.GetTeamMembers(db))
		about.GET("/achievements", controllers.GetAchievements(db))
		about.GET("/brand-logos", controllers.GetBrandLogos(db))
		about.GET("/agency-info", controllers.GetAgencyInfo(db))

		admin := about.Group("/admin", protect, adminOnly)
		{
			admin.GET("", controllers.GetAllAboutPages(db))
			admin.POST("", controllers.CreateAboutPage(db))
			admin.POST("/import", controllers.ImportAboutPage(db))
			admin.GET("/:id", controllers.GetAboutPageWithDetails(db))
			admin.PATCH("/:id", controllers.UpdateAboutPage(db))
			admin.DELETE("/:id", controllers.DeleteAboutPage(db))

			admin.POST("/:id/team-members", controllers.AddTeamMember(db))
			admin.PATCH("/:id/team-members/:teamMemberId", controllers.UpdateTeamMember(db))
			admin.DELETE("/:id/team-members/:teamMemberId", controllers.DeleteTeamMember(db))

			admin.POST("/:id/achievements", controllers.AddAchievement(db))
			admin.PATCH("/:id/achievements/:achievementId", controllers.UpdateAchievement(db))
			admin.DELETE("/:id/achievements/:achievementId", controllers.DeleteAchievement(db))

			admin.POST("/:id/brand-logos", controllers.AddBrandLogo(db))
			admin.PATCH("/:id/brand-logos/:brandLogoId", controllers.UpdateBrandLogo(db))
			admin.DELETE("/:id/brand-logos/:brandLogoId", controllers.DeleteBrandLogo(db))

			admin.POST("/:id/order/:type", controllers.UpdateAboutOrder(db))
			admin.PATCH("/:id/:type/:itemId/toggle", controllers.ToggleAboutItem(db))
			admin.POST("/:id/duplicate", controllers.DuplicateAboutPage(db))
			admin.GET("/:id/export", controllers.ExportAboutPage(db))
		}
	}

	r.Run()
}
