package database

import (
	"gorm.io/gorm"

	classModel "craftedshots_backend/internals/features/classes/listings/model"
	selectedModel "craftedshots_backend/internals/features/classes/selections/model"
	paymentModel "craftedshots_backend/internals/features/payment/payments/model"
	reviewModel "craftedshots_backend/internals/features/reviews/model"
	userModel "craftedshots_backend/internals/features/users/user/model"
	"craftedshots_backend/internals/store"
)

// Collections adalah handle store yang dioper ke semua controller.
type Collections struct {
	Users           store.Collection[userModel.UserModel]
	Classes         store.Collection[classModel.ClassModel]
	Reviews         store.Collection[reviewModel.ReviewModel]
	SelectedClasses store.Collection[selectedModel.SelectedClassModel]
	Payments        store.Collection[paymentModel.PaymentModel]
}

func NewGormCollections(db *gorm.DB) (*Collections, error) {
	return build(
		func() (store.Collection[userModel.UserModel], error) {
			return store.NewGormCollection[userModel.UserModel](db)
		},
		func() (store.Collection[classModel.ClassModel], error) {
			return store.NewGormCollection[classModel.ClassModel](db)
		},
		func() (store.Collection[reviewModel.ReviewModel], error) {
			return store.NewGormCollection[reviewModel.ReviewModel](db)
		},
		func() (store.Collection[selectedModel.SelectedClassModel], error) {
			return store.NewGormCollection[selectedModel.SelectedClassModel](db)
		},
		func() (store.Collection[paymentModel.PaymentModel], error) {
			return store.NewGormCollection[paymentModel.PaymentModel](db)
		},
	)
}

// NewMemoryCollections untuk STORE_DRIVER=memory dan test handler.
func NewMemoryCollections() (*Collections, error) {
	return build(
		store.NewMemoryCollection[userModel.UserModel],
		store.NewMemoryCollection[classModel.ClassModel],
		store.NewMemoryCollection[reviewModel.ReviewModel],
		store.NewMemoryCollection[selectedModel.SelectedClassModel],
		store.NewMemoryCollection[paymentModel.PaymentModel],
	)
}

func build(
	users func() (store.Collection[userModel.UserModel], error),
	classes func() (store.Collection[classModel.ClassModel], error),
	reviews func() (store.Collection[reviewModel.ReviewModel], error),
	selected func() (store.Collection[selectedModel.SelectedClassModel], error),
	payments func() (store.Collection[paymentModel.PaymentModel], error),
) (*Collections, error) {
	var (
		c   Collections
		err error
	)
	if c.Users, err = users(); err != nil {
		return nil, err
	}
	if c.Classes, err = classes(); err != nil {
		return nil, err
	}
	if c.Reviews, err = reviews(); err != nil {
		return nil, err
	}
	if c.SelectedClasses, err = selected(); err != nil {
		return nil, err
	}
	if c.Payments, err = payments(); err != nil {
		return nil, err
	}
	return &c, nil
}
