package mocks

import (
	context "context"

	models "github.com/gradwear/storefront/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// OptionsService is a mock type for the OptionsService type
type OptionsService struct {
	mock.Mock
}

func (_m *OptionsService) Selection(ctx context.Context, userID int64, product *models.Product) models.OptionSelection {
	ret := _m.Called(ctx, userID, product)

	var r0 models.OptionSelection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.OptionSelection)
	}

	return r0
}

func (_m *OptionsService) Draft(ctx context.Context, userID int64, productID int64) models.OptionSelection {
	ret := _m.Called(ctx, userID, productID)

	var r0 models.OptionSelection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.OptionSelection)
	}

	return r0
}

func (_m *OptionsService) UpdateSelection(ctx context.Context, userID int64, productID int64, name string, value string, origin string) (models.OptionSelection, error) {
	ret := _m.Called(ctx, userID, productID, name, value, origin)

	var r0 models.OptionSelection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.OptionSelection)
	}

	return r0, ret.Error(1)
}

func (_m *OptionsService) Sync(ctx context.Context, userID int64, product *models.Product, selection models.OptionSelection, origin string) error {
	ret := _m.Called(ctx, userID, product, selection, origin)

	return ret.Error(0)
}
