package services

import (
	"errors"

	"github.com/SerfiMolotov/MissDelice/configs"
	"github.com/SerfiMolotov/MissDelice/repository"
	"github.com/SerfiMolotov/MissDelice/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthService(users *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

type LoginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials and mints a signed token for the admin panel.
func (s *AuthService) Login(in LoginIn) (string, error) {
	user, err := s.Users.GetByUsername(in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnknownUser
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", ErrWrongPassword
	}

	return utils.GenerateToken(user.ID, user.Username, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
}
