// Package idgen generates and validates entity ids. Ids are 24-character
// hex ObjectIDs, the same shape the hosted API hands out.
package idgen

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDLength is the number of hex characters in an id.
const IDLength = 24

// Generate creates a new unique id.
func Generate() string {
	return primitive.NewObjectID().Hex()
}

// Valid reports whether s is a well-formed id.
func Valid(s string) bool {
	return primitive.IsValidObjectID(s)
}
