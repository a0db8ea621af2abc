package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visioncraft/agencybackend/auth"
	"github.com/visioncraft/agencybackend/database"
	"github.com/visioncraft/agencybackend/dto"
	"github.com/visioncraft/agencybackend/middleware"
	"github.com/visioncraft/agencybackend/models"
	"github.com/visioncraft/agencybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// sendToken signs a fresh token for the given version, mirrors it into the
// session cookie and writes the login-shaped envelope.
func sendToken(c *gin.Context, signer auth.TokenSigner, user models.User, statusCode int) {
	token, err := signer.Sign(user.ID.Hex(), user.TokenVersion)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to sign token")
		return
	}
	utils.SetSessionCookie(c, token)
	utils.Success(c, statusCode, gin.H{
		"token": token,
		"data":  gin.H{"user": user.Public()},
	})
}

// Login verifies credentials and starts a fresh session. The version bump
// means a new login supersedes every earlier session for the account.
func Login(db *database.Database, signer auth.TokenSigner, hasher auth.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		_ = c.ShouldBindJSON(&body)
		if body.Email == "" || body.Password == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide email and password")
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))

		var user models.User
		usersCol := db.Collection("users")
		err := usersCol.FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&user)
		// Same message for unknown email and wrong password so callers
		// cannot enumerate accounts.
		if err != nil || hasher.Compare(user.PasswordHash, body.Password) != nil {
			utils.Fail(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}

		user.TokenVersion++
		_, err = usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{"tokenVersion": user.TokenVersion, "updatedAt": time.Now().UTC()},
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to update session version")
			return
		}

		sendToken(c, signer, user, http.StatusOK)
	}
}

// SetSecurityQuestion sets or updates the recovery question. First-time
// setup requires proof of the current password; updates are attested by the
// session itself. Either way the recovery credential changed, so the token
// version is bumped and a fresh token returned.
func SetSecurityQuestion(db *database.Database, signer auth.TokenSigner, hasher auth.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SetSecurityQuestionDTO
		_ = c.ShouldBindJSON(&body)
		if body.Question == "" || body.Answer == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide both question and answer")
			return
		}

		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}

		hasExistingQuestion := user.SecurityQ.IsSet()
		if !hasExistingQuestion {
			if body.CurrentPassword == "" {
				utils.Fail(c, http.StatusBadRequest, "Current password is required to set security question for the first time")
				return
			}
			if hasher.Compare(user.PasswordHash, body.CurrentPassword) != nil {
				utils.Fail(c, http.StatusUnauthorized, "Current password is incorrect")
				return
			}
		}

		answerHash, err := hasher.Hash(body.Answer)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to hash answer")
			return
		}

		user.SecurityQ = models.SecurityQuestion{Question: body.Question, AnswerHash: answerHash}
		user.TokenVersion++

		usersCol := db.Collection("users")
		_, err = usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{
				"securityQuestion": user.SecurityQ,
				"tokenVersion":     user.TokenVersion,
				"updatedAt":        time.Now().UTC(),
			},
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to save security question")
			return
		}

		message := "Security question set successfully"
		if hasExistingQuestion {
			message = "Security question updated successfully"
		}

		token, err := signer.Sign(user.ID.Hex(), user.TokenVersion)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to sign token")
			return
		}
		utils.SetSessionCookie(c, token)
		utils.Success(c, http.StatusOK, gin.H{
			"message": message,
			"token":   token,
			"data":    gin.H{"user": user.Public()},
		})
	}
}

// GetSecurityQuestion is the public first step of recovery: it returns the
// question text only, never the answer.
func GetSecurityQuestion(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SecurityEmailDTO
		_ = c.ShouldBindJSON(&body)
		if body.Email == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide email address")
			return
		}

		user, ok := findUserByEmail(c, db, body.Email)
		if !ok {
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"data": gin.H{"securityQuestion": user.SecurityQ.Question},
		})
	}
}

// VerifySecurityAnswer checks the answer and, on success, issues a one-shot
// reset token. Only the token's hash is persisted; the plaintext exists in
// this one response.
func VerifySecurityAnswer(db *database.Database, hasher auth.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.VerifySecurityAnswerDTO
		_ = c.ShouldBindJSON(&body)
		if body.Email == "" || body.Answer == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide email and security answer")
			return
		}

		user, ok := findUserByEmail(c, db, body.Email)
		if !ok {
			return
		}

		if hasher.Compare(user.SecurityQ.AnswerHash, body.Answer) != nil {
			utils.Fail(c, http.StatusUnauthorized, "Incorrect security answer")
			return
		}

		plain, hash, expiry, err := auth.NewResetToken()
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to generate reset token")
			return
		}

		usersCol := db.Collection("users")
		_, err = usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{
				"passwordResetTokenHash": hash,
				"passwordResetExpiry":    expiry,
			},
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to store reset token")
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"message":          "Security answer verified successfully",
			"resetToken":       plain,
			"securityQuestion": user.SecurityQ.Question,
		})
	}
}

// ResetPasswordWithSecurity consumes a reset token. Possession of the token
// alone is not enough: the security answer is re-verified as a second
// factor. Clearing the reset fields on success makes the token single-use.
func ResetPasswordWithSecurity(db *database.Database, signer auth.TokenSigner, hasher auth.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ResetPasswordDTO
		_ = c.ShouldBindJSON(&body)
		if body.Token == "" || body.NewPassword == "" || body.Answer == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide reset token, new password, and security answer")
			return
		}

		hashedToken := auth.HashResetToken(body.Token)

		var user models.User
		usersCol := db.Collection("users")
		err := usersCol.FindOne(c.Request.Context(), bson.M{
			"passwordResetTokenHash": hashedToken,
			"passwordResetExpiry":    bson.M{"$gt": time.Now().UTC()},
		}).Decode(&user)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Token is invalid or has expired")
			return
		}

		if hasher.Compare(user.SecurityQ.AnswerHash, body.Answer) != nil {
			utils.Fail(c, http.StatusUnauthorized, "Incorrect security answer")
			return
		}

		newHash, err := hasher.Hash(body.NewPassword)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to hash password")
			return
		}

		user.TokenVersion++
		_, err = usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{
				"passwordHash": newHash,
				"tokenVersion": user.TokenVersion,
				"updatedAt":    time.Now().UTC(),
			},
			"$unset": bson.M{
				"passwordResetTokenHash": "",
				"passwordResetExpiry":    "",
			},
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to reset password")
			return
		}

		sendToken(c, signer, user, http.StatusOK)
	}
}

// UpdatePassword changes the password for an authenticated session and
// invalidates all outstanding tokens, exactly like a fresh login.
func UpdatePassword(db *database.Database, signer auth.TokenSigner, hasher auth.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdatePasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Please provide current and new password")
			return
		}

		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}

		if hasher.Compare(user.PasswordHash, body.CurrentPassword) != nil {
			utils.Fail(c, http.StatusUnauthorized, "Your current password is wrong.")
			return
		}

		newHash, err := hasher.Hash(body.NewPassword)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to hash password")
			return
		}

		user.TokenVersion++
		usersCol := db.Collection("users")
		_, err = usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{
				"passwordHash": newHash,
				"tokenVersion": user.TokenVersion,
				"updatedAt":    time.Now().UTC(),
			},
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to update password")
			return
		}

		sendToken(c, signer, user, http.StatusOK)
	}
}

// GetCurrentUser returns the caller's own account.
func GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}
		utils.Success(c, http.StatusOK, gin.H{
			"data": gin.H{"user": user.Public()},
		})
	}
}

// Logout bumps the token version, which kills every outstanding token for
// the account, not just the presented one. With no per-device session
// table that is the intended trade-off.
func Logout(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			return
		}

		usersCol := db.Collection("users")
		_, err := usersCol.UpdateByID(c.Request.Context(), user.ID, bson.M{
			"$set": bson.M{"tokenVersion": user.TokenVersion + 1, "updatedAt": time.Now().UTC()},
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "failed to log out")
			return
		}

		utils.ClearSessionCookie(c)
		utils.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// VerifyToken is the standalone check used by clients to probe whether a
// stored token is still usable. Same rules as the access gate, but the
// result is reported as an isValid flag instead of gating a resource.
func VerifyToken(db *database.Database, signer auth.TokenSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.VerifyTokenDTO
		_ = c.ShouldBindJSON(&body)
		tokenStr := body.Token
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			utils.Fail(c, http.StatusBadRequest, "Please provide a token to verify")
			return
		}

		claims, err := signer.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Token is invalid or expired",
				"isValid": false,
			})
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Token is invalid or expired",
				"isValid": false,
			})
			return
		}

		var user models.User
		usersCol := db.Collection("users")
		if err := usersCol.FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "The user belonging to this token does no longer exist.",
				"isValid": false,
			})
			return
		}

		if claims.TokenVersion != user.TokenVersion {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Token is no longer valid. Please log in again.",
				"isValid": false,
			})
			return
		}

		utils.Success(c, http.StatusOK, gin.H{
			"message": "Token is valid",
			"isValid": true,
			"data": gin.H{
				"user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
			},
		})
	}
}

// findUserByEmail resolves the recovery lookups shared by the public
// security-question endpoints: 404 when no account matches, 400 when the
// account has no question set.
func findUserByEmail(c *gin.Context, db *database.Database, email string) (models.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	usersCol := db.Collection("users")
	if err := usersCol.FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&user); err != nil {
		utils.Fail(c, http.StatusNotFound, "User not found")
		return models.User{}, false
	}

	if !user.SecurityQ.IsSet() {
		utils.Fail(c, http.StatusBadRequest, "Security question not set for this user")
		return models.User{}, false
	}

	return user, true
}
