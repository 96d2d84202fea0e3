// Package driverrepo provides data transfer objects and mapping functions for
// driver roster persistence. Drivers share the identity-provider user table;
// the repository filters by role so non-driver users never leak into the
// domain.
package driverrepo

import (
	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// driverRole is the role discriminator of driver rows in the user table.
const driverRole = "driver"

// UserDTO represents a row of the shared user table. Only rows with the
// driver role are mapped to the Driver aggregate; the Role column is written
// on insert and filtered on every read.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"type:varchar(32);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Available bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Role:      driverRole,
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Available: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto UserDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.Available)
}
