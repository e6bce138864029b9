package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studioe_backend/internals/constants"
	"studioe_backend/internals/features/users/model"
)

const sessionTTL = 24 * time.Hour

// GoogleIdentity is the subset of the Google ID-token claims this app uses.
type GoogleIdentity struct {
	Sub   string
	Email string
	Name  string
}

// VerifyGoogleIDToken validates the token against the configured client id
// and decodes its claims.
func VerifyGoogleIDToken(idToken, clientID string) (*GoogleIdentity, error) {
	if clientID == "" {
		return nil, errors.New("google sign-in not configured")
	}
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	return &GoogleIdentity{
		Sub:   claimSet.Sub,
		Email: strings.ToLower(claimSet.Email),
		Name:  claimSet.Name,
	}, nil
}

// UpsertGoogleUser finds the user by google id (or email), creating the user
// and a default student profile on first sign-in.
func UpsertGoogleUser(db *gorm.DB, ident *GoogleIdentity) (*model.UserModel, error) {
	var user model.UserModel
	err := db.Where("user_google_id = ?", ident.Sub).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// The email may exist from an earlier email/password sign-up; link it.
	err = db.Where("user_email = ?", ident.Email).First(&user).Error
	if err == nil {
		if err := db.Model(&user).Update("user_google_id", ident.Sub).Error; err != nil {
			return nil, err
		}
		user.UserGoogleID = &ident.Sub
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = model.UserModel{
		UserEmail:    ident.Email,
		UserFullName: ident.Name,
		UserGoogleID: &ident.Sub,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	profile := model.UserProfileModel{
		UserProfileUserID:      user.UserID,
		UserProfileAccountType: constants.RoleStudent,
	}
	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IssueSessionToken mints the HS256 session JWT the auth middleware verifies.
func IssueSessionToken(secret string, userID uuid.UUID, email string) (string, int, error) {
	if secret == "" {
		return "", 0, errors.New("missing JWT secret")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}
	return signed, int(sessionTTL.Seconds()), nil
}
