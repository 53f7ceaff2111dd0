package dto

import "time"

// APIResponse is the envelope for successful responses
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Count     *int        `json:"count,omitempty" example:"3"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewListResponse wraps a list and reports its length
func NewListResponse(data interface{}, count int) APIResponse {
	resp := NewAPIResponse(data)
	resp.Count = &count
	return resp
}
