package repository

import (
	"context"

	"github.com/jpvaldivia/norteexpreso/internal/models"
)

func (s *GormStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Staff.Person").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, asStoreErr(err)
	}
	return &user, nil
}
