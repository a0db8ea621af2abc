package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/auth"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CurrentUserKey is where Protect stores the resolved account in the gin
// context.
const CurrentUserKey = "currentUser"

// ExtractToken pulls the bearer token from the Authorization header or,
// failing that, the session cookie.
func ExtractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// Protect verifies the presented token against the account's current token
// version and attaches the live account to the request context.
func Protect(db *database.Database, signer auth.TokenSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c)
		if tokenStr == "" {
			utils.Fail(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}

		claims, err := signer.Parse(tokenStr)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		var user models.User
		usersCol := db.Collection("users")
		if err := usersCol.FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
			utils.Fail(c, http.StatusUnauthorized, "The user belonging to this token does no longer exist.")
			return
		}

		if claims.TokenVersion != user.TokenVersion {
			utils.Fail(c, http.StatusUnauthorized, "Token is no longer valid. Please log in again.")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RestrictTo is the role gate: 403 unless the resolved account's role is in
// the allowed set. Must run after Protect.
func RestrictTo(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}
		if !allowed[user.Role] {
			utils.Fail(c, http.StatusForbidden, "You do not have permission to perform this action")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account Protect resolved for this request.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
