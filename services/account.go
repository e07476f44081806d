package services

import (
	"errors"
	"unicode"

	"github.com/akber360/QA-Cinema/models"
	"github.com/akber360/QA-Cinema/utils"
	"gorm.io/gorm"
)

// AccountService handles signup, login and billing-profile updates.
// Identity is always passed in explicitly; the service never reads
// session state.
type AccountService struct {
	db                *gorm.DB
	passwordMinLength int
}

func NewAccountService(db *gorm.DB, passwordMinLength int) *AccountService {
	return &AccountService{db: db, passwordMinLength: passwordMinLength}
}

// Signup validates the password policy and uniqueness of username and
// email, then stores the user with a bcrypt hash.
func (s *AccountService) Signup(username, email, password, confirmation string) (*models.User, error) {
	if username == "" || email == "" {
		return nil, &ValidationError{Field: "username", Message: "username and email are required"}
	}
	if password != confirmation {
		return nil, &ValidationError{Field: "confirmation", Message: "password and confirmation do not match"}
	}
	if err := s.checkPasswordPolicy(password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login verifies the username/password pair. The two failure modes keep
// their distinct user-facing messages but reveal nothing further.
func (s *AccountService) Login(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAccount
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrBadCredentials
	}

	return &user, nil
}

// BillingProfile is the payment form payload written onto the user row.
type BillingProfile struct {
	FirstName  string
	LastName   string
	Address    string
	CardNumber string
	CardExpiry string
	CardCVC    string
}

// UpdateBilling overwrites the user's billing fields. Each payment
// submission replaces the previous profile.
func (s *AccountService) UpdateBilling(username string, profile BillingProfile) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.FirstName = profile.FirstName
	user.LastName = profile.LastName
	user.Address = profile.Address
	user.CardNumber = profile.CardNumber
	user.CardExpiry = profile.CardExpiry
	user.CardCVC = profile.CardCVC

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *AccountService) checkPasswordPolicy(password string) error {
	if len(password) < s.passwordMinLength {
		return &ValidationError{Field: "password", Message: "password is too short"}
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return &ValidationError{
			Field:   "password",
			Message: "password must mix upper and lower case letters, digits and a special character",
		}
	}
	return nil
}
