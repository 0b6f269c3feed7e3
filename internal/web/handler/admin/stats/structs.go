package stats

import (
	"github.com/maryjean/suggestion-box/internal/db/controller/suggestion"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

// statsResponse answers the stats request.
type statsResponse struct {
	handler.Result
	Stats *suggestion.Stats `json:"stats"`
}
