package mongodb

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/grocermatch/backend/internal/domain"
)

// productDocument mirrors the stored record shape. Only the title is
// required; absent optional fields decode to their zero values, matching the
// catalog defaults (empty strings, price 0).
type productDocument struct {
	ID          bson.ObjectID `bson:"_id"`
	Title       string        `bson:"title"`
	Description string        `bson:"description,omitempty"`
	Price       float64       `bson:"price,omitempty"`
	Category    string        `bson:"category,omitempty"`
	ImageURL    string        `bson:"imageUrl,omitempty"`
}

// toDomain converts a stored record into a domain product. The ObjectID
// becomes a stable string identifier at this boundary.
func (d productDocument) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
	}
}
