package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserID wraps the document store's native 24-character hex identifier.
// Before first persistence a User has no UserID at all.
type UserID struct {
	value string
}

// NewUserID validates and wraps an identifier string.
func NewUserID(raw string) (UserID, error) {
	if raw == "" {
		return UserID{}, &InvalidUserIDError{Reason: ReasonRequired}
	}
	if !primitive.IsValidObjectID(raw) {
		return UserID{}, &InvalidUserIDError{Reason: ReasonBadFormat}
	}
	return UserID{value: raw}, nil
}

// GenerateUserID mints a fresh random identifier.
func GenerateUserID() UserID {
	return UserID{value: primitive.NewObjectID().Hex()}
}

// UserIDFromObjectID converts the store's native id representation.
func UserIDFromObjectID(oid primitive.ObjectID) UserID {
	return UserID{value: oid.Hex()}
}

// ObjectID converts back to the store's native id representation.
// Total for valid instances, which is the only kind constructible.
func (id UserID) ObjectID() primitive.ObjectID {
	oid, _ := primitive.ObjectIDFromHex(id.value)
	return oid
}

func (id UserID) Value() string { return id.value }

func (id UserID) String() string { return id.value }

func (id UserID) Equals(other UserID) bool { return id.value == other.value }
