package suggestions

import (
	"github.com/maryjean/suggestion-box/internal/db/models"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

// submitRequest is the submission payload. Category is an open string set,
// any value is stored as-is.
type submitRequest struct {
	Text     string `json:"text" validate:"required,max=1000"`
	Category string `json:"category"`
}

// submitResponse answers a successful submission with the new id.
type submitResponse struct {
	handler.Result
	ID uint64 `json:"id"`
}

// listResponse answers a listing request.
type listResponse struct {
	handler.Result
	Suggestions []models.Suggestion `json:"suggestions"`
}
