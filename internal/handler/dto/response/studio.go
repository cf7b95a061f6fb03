package response

import (
	"studiobook/internal/usecase/queries"
)

type StudioListResponse struct {
	Studios []queries.StudioView `json:"studios"`
}
