package dto

type GetHealthCommand struct{}

type HealthOutput struct {
	Status string `json:"status"`
}

type GetOpenAPISpecQuery struct{}

type OpenAPISpecOutput struct {
	Content     []byte
	ContentType string
}
