package response

import (
	"encoding/json"
	"net/http"
)

// Meta carries pagination info for list endpoints.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ErrorBody is the error envelope: {"detail": ...}. Detail is a message
// string, or a field->message map for validation failures.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

// NewMeta builds pagination metadata. Pages is ceil(total/limit).
func NewMeta(total int64, page, limit int) Meta {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Meta{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, detail interface{}) {
	JSON(w, statusCode, ErrorBody{Detail: detail})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	Error(w, http.StatusBadRequest, errors)
}
