package notification

type NotificationResponse struct {
	ID         string  `json:"id"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	IsRead     bool    `json:"is_read"`
	CreatedAt  string  `json:"created_at"`
}

// MapNotificationToResponse converts a Notification entity to NotificationResponse
func MapNotificationToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		EmployeeID: n.EmployeeID,
		Type:       string(n.Type),
		Message:    n.Message,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
