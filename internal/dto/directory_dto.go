package dto

// DirectoryItemsQuery binds the listing endpoint's query string.
type DirectoryItemsQuery struct {
	Period   string `form:"period" binding:"required"`
	Order    string `form:"order"`
	Asc      bool   `form:"asc"`
	Page     int    `form:"page" binding:"min=0"`
	Name     string `form:"name"`
	Username string `form:"username"`
}

type DirectoryUserResponse struct {
	Username  string  `json:"username"`
	Name      string  `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DirectoryItemResponse is one listing row. TimeRead is present only for
// the fine-grained period.
type DirectoryItemResponse struct {
	ID                 int64                 `json:"id"`
	User               DirectoryUserResponse `json:"user"`
	TopicCount         int                   `json:"topic_count"`
	PostCount          int                   `json:"post_count"`
	TotalParticipation int                   `json:"total_participation"`
	TimeRead           *string               `json:"time_read,omitempty"`
}

// DirectoryListResult is what the listing service hands the transport
// layer; the handler adds the load_more descriptor.
type DirectoryListResult struct {
	Items     []DirectoryItemResponse
	TotalRows int64
}

type DirectoryItemsResponse struct {
	Items     []DirectoryItemResponse `json:"items"`
	TotalRows int64                   `json:"total_rows"`
	LoadMore  string                  `json:"load_more,omitempty"`
}

type PeriodsResponse struct {
	Periods       []string `json:"periods"`
	CurrentPeriod string   `json:"current_period"`
}
