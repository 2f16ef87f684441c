package models

import "time"

type OwnerSummary struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

type Property struct {
	ID          string        `json:"id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Price       float64       `json:"price" bson:"price"`
	Location    string        `json:"location" bson:"location"`
	OwnerID     string        `json:"owner_id" bson:"owner"`
	Owner       *OwnerSummary `json:"owner,omitempty" bson:"-"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// PropertyPatch carries a partial update. A nil field is left untouched;
// a non-nil field replaces the stored value, even when it holds a zero value.
type PropertyPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
}

func (p PropertyPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.Location == nil
}

// Apply copies the present fields onto prop. Owner and ID are never touched.
func (p PropertyPatch) Apply(prop *Property) {
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Price != nil {
		prop.Price = *p.Price
	}
	if p.Location != nil {
		prop.Location = *p.Location
	}
}
