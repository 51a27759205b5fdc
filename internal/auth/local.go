package auth

import (
	"context"
	"log"

	"github.com/Arivumathi323/login/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LocalProvider implements Provider on top of the application database:
// bcrypt-hashed credentials in the users table, HS256 JWTs as session
// tokens. It also creates the profile row on sign-up, playing the role a
// hosted provider delegates to a database trigger — which is why profile
// reads elsewhere must tolerate a row that has not landed yet.
type LocalProvider struct {
	db     *gorm.DB
	secret string
}

func NewLocalProvider(db *gorm.DB, secret string) *LocalProvider {
	return &LocalProvider{db: db, secret: secret}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, fullName string) (*Session, error) {
	if email == "" || password == "" {
		return nil, &Error{Message: "Email and password are required"}
	}

	var existing models.User
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, &Error{Message: "Email already registered"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &Error{Message: "Failed to create account"}
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		FullName: fullName,
	}
	if err := p.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, &Error{Message: "Failed to create account"}
	}

	profile := models.Profile{
		ID:       user.ID,
		FullName: fullName,
		Email:    email,
	}
	if err := p.db.WithContext(ctx).Create(&profile).Error; err != nil {
		// The account exists either way; the dashboard falls back to a
		// default display name until the profile row shows up.
		log.Printf("auth: profile creation failed for %s: %v", user.ID, err)
	}

	return p.session(user)
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var user models.User
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, &Error{Message: "Invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &Error{Message: "Invalid credentials"}
	}

	return p.session(user)
}

// SignOut has no server-side state to tear down: tokens are stateless and
// simply expire. Callers clear their session store.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	return nil
}

func (p *LocalProvider) session(user models.User) (*Session, error) {
	token, expiresAt, err := GenerateToken(p.secret, user.ID, user.Email)
	if err != nil {
		return nil, &Error{Message: "Failed to generate token"}
	}
	return &Session{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
