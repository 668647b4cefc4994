package handlers

import "github.com/nfrund/shopdocs/internal/catalog"

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TopicSummary is one table-of-contents row.
type TopicSummary struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// TopicListResponse lists topics in registration order.
type TopicListResponse struct {
	Topics []TopicSummary `json:"topics"`
	Count  int            `json:"count"`
}

// TopicResponse carries one topic. Payload is the raw, unmodified markup.
type TopicResponse struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// NewTopicListResponse builds the list DTO from registry entries.
func NewTopicListResponse(entries []catalog.Unit) *TopicListResponse {
	topics := make([]TopicSummary, len(entries))
	for i, u := range entries {
		topics[i] = TopicSummary{Key: u.Key, Title: u.Title}
	}
	return &TopicListResponse{Topics: topics, Count: len(topics)}
}

// NewTopicResponse builds the DTO for a single unit.
func NewTopicResponse(u catalog.Unit) *TopicResponse {
	return &TopicResponse{Key: u.Key, Title: u.Title, Payload: u.Payload}
}
