package hero

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hero is a hero document as stored in mongo
type Hero struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	SecretName string             `json:"secret_name" bson:"secret_name"`
	Age        *int               `json:"age,omitempty" bson:"age,omitempty"`
}

// Update carries a partial hero update. nil means the field is left untouched.
type Update struct {
	Name       *string `json:"name" bson:"name,omitempty"`
	SecretName *string `json:"secret_name" bson:"secret_name,omitempty"`
	Age        *int    `json:"age" bson:"age,omitempty"`
}

// IsEmpty reports whether the update carries no fields
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.SecretName == nil && u.Age == nil
}

type createRequest struct {
	Name       string `json:"name"`
	SecretName string `json:"secret_name"`
	Age        *int   `json:"age"`
}
