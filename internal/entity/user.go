package entity

import (
	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	OrganizationID uuid.UUID
	RoleID         uuid.UUID
}
