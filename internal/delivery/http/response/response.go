package response

import "github.com/user/broadcast-service/internal/entity"

type ParseResponse struct {
	Status     string                  `json:"status"`
	ParsedData *entity.ParsedBroadcast `json:"parsed_data"`
}

type GenerateResponse struct {
	Status string `json:"status"`
	Draft  string `json:"draft"`
}

type ResearchResponse struct {
	Query   string                    `json:"query"`
	Results []entity.BookSearchResult `json:"results"`
}
