package notification

import "fmt"

// Service formats notification messages. Nothing is delivered.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) SendCheckoutNotification(title, dueDate string) string {
	return fmt.Sprintf("Notification: '%s' checked out. %s", title, dueDate)
}

func (s *Service) SendReturnNotification(title string) string {
	return fmt.Sprintf("Notification: '%s' returned.", title)
}
