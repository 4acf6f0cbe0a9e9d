package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dfwhvac/internal/db"
)

// ErrInvalidCredentials 不区分用户名不存在与密码错误。
var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminService handles back office accounts.
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates an AdminService instance.
func NewAdminService(gdb *gorm.DB) *AdminService {
	return &AdminService{db: gdb}
}

// Authenticate checks a username and password against the stored hash.
func (s *AdminService) Authenticate(username, password string) (*db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user db.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// EnsureAdmin creates the account when it does not exist yet.
func (s *AdminService) EnsureAdmin(username, password string) (bool, error) {
	return db.EnsureUser(s.db, username, password)
}
