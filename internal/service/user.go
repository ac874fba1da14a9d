package service

import (
	"InventoryPro/internal/model"
	"InventoryPro/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLen — минимальная длина пароля при регистрации.
const MinPasswordLen = 6

// UserService — юзкейсы регистрации и входа поверх UserRepository.
type UserService struct {
	repo repo.UserRepository
}

// NewUserService создаёт сервис пользователей.
func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register валидирует данные регистрации и создаёт пользователя.
// Пароль хранится только как bcrypt-хеш. Конфликт email проверяется
// дважды: быстрая проверка здесь и уникальный индекс БД на случай гонки.
func (s *UserService) Register(ctx context.Context, fullName, email, password, confirmPassword string) (*model.User, error) {
	if fullName == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrFieldsRequired)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrPasswordMismatch)
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrPasswordTooShort)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		FullName: fullName,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		// Гонка двух одновременных регистраций: вставку решает индекс.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login проверяет пару email/пароль. Побочных эффектов нет.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrCredsRequired)
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	// bcrypt сравнение устойчиво к таймингу
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

// GetByID возвращает пользователя по идентификатору (для проверки сессии).
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
