package auth

import (
	"net/http"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Firebase ID token from the Authorization
// header and attaches it to the gin context under "token".
func AuthMiddleware(firebaseApp *firebase.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		authClient, err := firebaseApp.Auth(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize Firebase Auth"})
			c.Abort()
			return
		}

		token, err := authClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
			c.Abort()
			return
		}

		c.Set("token", token)

		c.Next()
	}
}

// AdminMiddleware allows only users with an admins/{uid} document through.
// It is the single authorization gate for every admin operation; handlers
// behind it never re-derive the role.
func AdminMiddleware(firestoreClient *firestore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.MustGet("token").(*firebaseauth.Token)

		doc, err := firestoreClient.Collection("admins").Doc(token.UID).Get(c.Request.Context())
		if err != nil {
			if status.Code(err) == codes.NotFound {
				c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check admin access"})
			}
			c.Abort()
			return
		}
		if !doc.Exists() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user's UID from the gin context.
func UserID(c *gin.Context) string {
	token := c.MustGet("token").(*firebaseauth.Token)
	return token.UID
}
