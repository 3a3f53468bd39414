package model

import "time"

// Establishment is the venue grouping that contains one or more courts.
// Each establishment belongs to exactly one owner account.
//
// Fields:
//
//	ID        – primary key identifier.
//	OwnerID   – user ID of the establishment owner.
//	Name      – unique name per owner.
//	Address   – free-text street address.
//	Phone     – optional contact phone.
//	CreatedAt – timestamp when the establishment was created.
//	UpdatedAt – timestamp of last update.
type Establishment struct {
	ID        uint64    `json:"id"`
	OwnerID   uint64    `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
