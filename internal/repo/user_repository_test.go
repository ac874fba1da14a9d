package repo

import (
	"InventoryPro/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание: id назначается при вставке
	u, err := r.CreateUser(ctx, &model.User{FullName: "John Doe", Email: "john@example.com", Password: "hash"})
	assert.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	// поиск по email — найдено
	got, err := r.GetUserByEmail(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// поиск по id — найдено
	got, err = r.GetUserByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", got.Email)

	// уникальный email — вторая вставка должна дать ошибку,
	// и в таблице остаётся ровно одна запись
	_, err = r.CreateUser(ctx, &model.User{FullName: "Other", Email: "john@example.com", Password: "x"})
	assert.Error(t, err)

	var count int64
	db.Model(&model.User{}).Where("email = ?", "john@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByEmail(ctx, "doesnotexist@example.com")
	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
