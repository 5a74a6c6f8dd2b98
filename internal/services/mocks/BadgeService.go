package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// BadgeService is a mock type for the BadgeService type
type BadgeService struct {
	mock.Mock
}

func (_m *BadgeService) Badges(ctx context.Context, userID int64) (*models.Badges, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.Badges
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Badges)
	}

	return r0, ret.Error(1)
}

func (_m *BadgeService) Watch(ctx context.Context, userID int64, onChange func(models.Badges)) func() {
	ret := _m.Called(ctx, userID, onChange)

	if rf, ok := ret.Get(0).(func()); ok {
		return rf
	}

	return func() {}
}
