package dto

// ==============================================
// NOTIFICATION DTOs
// ==============================================

// NotificationDTO
type NotificationDTO struct {
	ID               int    `json:"id"`
	NotificationType string `json:"notification_type,omitempty"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	Icon             string `json:"icon,omitempty"`
	Link             string `json:"link,omitempty"`
	IsRead           bool   `json:"is_read"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// NotificationsResponse
type NotificationsResponse struct {
	APIResponse
	Notifications []NotificationDTO `json:"notifications,omitempty"`
	UnreadCount   int               `json:"unread_count"`
}

// MarkReadRequest
type MarkReadRequest struct {
	NotificationID int `json:"notification_id"`
}
