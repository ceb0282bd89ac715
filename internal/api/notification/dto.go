package notification

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type MarkSeenResponse struct {
	Message      string      `json:"message"`
	Notification interface{} `json:"notification,omitempty"`
}
