package models

import "time"

// BaseResponse represents the base API response structure
type BaseResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp" example:"1640995200"`
	RequestID string      `json:"request_id,omitempty" example:"req_123456"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string `json:"code" example:"INVALID_REQUEST"`
	Message string `json:"message" example:"Invalid request parameters"`
	Details string `json:"details,omitempty" example:"Field 'email' is required"`
}

// OK builds a success envelope
func OK(data interface{}) BaseResponse {
	return BaseResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
}

// Err builds a failure envelope
func Err(code, message string) BaseResponse {
	return BaseResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now().Unix(),
	}
}

// TokenIssuedResponse acknowledges successful token issuance. The token
// itself rides in the session cookie, never in the body.
type TokenIssuedResponse struct {
	Success bool `json:"success" example:"true"`
}

// PaymentIntentResponse carries the opaque client secret back to the
// browser so it can confirm the charge with the payment processor.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret" example:"pi_3Abc_secret_xyz"`
}

// InsertedResponse reports the ID assigned to a newly stored document
type InsertedResponse struct {
	InsertedID string `json:"insertedId" example:"662f9a8c3f1b2a0012345678"`
}

// HealthCheckResponse represents health check response
type HealthCheckResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp int64  `json:"timestamp" example:"1640995200"`
	Version   string `json:"version" example:"1.0.0"`
}
