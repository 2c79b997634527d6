package services

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"cliprewards-backend/internal/utils"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserAlreadyExists = errors.New("user with this email already exists")

// RegisterUser creates an account with the configured starting balance.
// The signup bonus goes through the ledger like every other balance
// change, so the transaction log reconstructs the balance from day one.
func RegisterUser(email, name, password string) (*models.User, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	email = models.NormalizeEmail(email)

	var existingUser models.User
	result := database.DB.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var userCount int64
	database.DB.Model(&models.User{}).Count(&userCount)

	role := "user"
	if userCount == 0 {
		role = "admin"
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
		Role:     role,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if cfg.StartingBalance > 0 {
			return creditUser(tx, user, cfg.StartingBalance, models.TransactionTypeCredit, "Signup bonus")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func LoginUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error; err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
