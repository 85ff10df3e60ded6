// Package model holds the GORM table mappings of the relational store.
package model

import (
	"github.com/google/uuid"
)

// newID assigns a time-ordered UUID when the caller left the ID empty.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All returns every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&RestaurantModel{},
		&MenuItemModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&UserDeviceModel{},
	}
}
