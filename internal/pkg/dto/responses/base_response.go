package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page          int `json:"page"`
	PageSize      int `json:"page_size"`
	TotalPages    int `json:"total_pages"`
	TotalElements int `json:"total_elements"`
}
