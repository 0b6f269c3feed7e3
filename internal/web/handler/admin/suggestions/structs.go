package suggestions

import (
	"github.com/maryjean/suggestion-box/internal/db/models"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

// listResponse answers the admin listing request.
type listResponse struct {
	handler.Result
	Suggestions []models.Suggestion `json:"suggestions"`
}
