package export

import (
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

// exportResponse answers the export request.
type exportResponse struct {
	handler.Result
	CSV string `json:"csv"`
}
