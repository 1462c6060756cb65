package core

import (
	"github.com/google/uuid"
)

// IDSource generates opaque piece identifiers
type IDSource interface {
	NewID() string
}

// UUIDSource issues random (v4) UUIDs
type UUIDSource struct{}

func (UUIDSource) NewID() string { return uuid.NewString() }

// DefaultIDs is used when a constructor is given a nil IDSource
var DefaultIDs IDSource = UUIDSource{}
