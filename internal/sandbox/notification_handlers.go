package sandbox

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fedha/ftk-go/internal/api/dto"
)

func (s *Server) handleNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	all := make([]dto.NotificationDTO, 0)
	unread := 0
	for i := len(s.store.notifications) - 1; i >= 0; i-- {
		n := s.store.notifications[i]
		if n.UserID != account.ID {
			continue
		}
		// unread counts the whole inbox, not the page
		if !n.Read {
			unread++
		}
		all = append(all, dto.NotificationDTO{
			ID:               n.ID,
			NotificationType: n.Type,
			Title:            n.Title,
			Message:          n.Message,
			Icon:             n.Icon,
			Link:             n.Link,
			IsRead:           n.Read,
			CreatedAt:        n.CreatedAt.Format(time.RFC3339),
		})
	}

	page := all
	if offset >= len(page) {
		page = nil
	} else {
		page = page[offset:]
	}
	if limit < len(page) {
		page = page[:limit]
	}
	if page == nil {
		page = []dto.NotificationDTO{}
	}

	c.JSON(http.StatusOK, dto.NotificationsResponse{
		APIResponse:   dto.APIResponse{Success: true},
		Notifications: page,
		UnreadCount:   unread,
	})
}

func (s *Server) handleMarkRead(c *gin.Context) {
	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NotificationID == 0 {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Message: "Notification ID is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	for i := range s.store.notifications {
		n := &s.store.notifications[i]
		if n.ID == req.NotificationID && n.UserID == account.ID {
			n.Read = true
			c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "Notification marked as read"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.APIResponse{Message: "Notification not found"})
}

func (s *Server) handleMarkAllRead(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	account := s.current(c)
	for i := range s.store.notifications {
		if s.store.notifications[i].UserID == account.ID {
			s.store.notifications[i].Read = true
		}
	}
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: "All notifications marked as read"})
}
