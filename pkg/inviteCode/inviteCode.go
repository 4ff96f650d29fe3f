package inviteCode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samborkent/uuidv7"
)

// Generate builds an opaque single-use invite code for the given email.
func Generate(email string) string {
	uniqueID := uuidv7.New()

	code := fmt.Sprintf("%s|%s", email, uniqueID.String())

	return base64.URLEncoding.EncodeToString([]byte(code))
}

// Decode splits an invite code back into the invited email and its unique ID.
func Decode(code string) (email, uniqueID string, err error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(code)
	if err != nil {
		return "", "", fmt.Errorf("malformed invite code: %w", err)
	}
	res := strings.Split(string(decodedBytes), "|")
	if len(res) != 2 {
		return "", "", fmt.Errorf("not correct format")
	}
	return res[0], res[1], nil
}
