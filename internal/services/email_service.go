package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

// Notifier — внешний приёмник уведомлений; отправка fire-and-forget,
// сбой логируется вызывающим и не откатывает изменение состояния.
type Notifier interface {
	SendVerificationEmail(user *models.User, code int) error
	SendPasswordResetEmail(user *models.User, token string) error
	SendApprovalEmail(user *models.User) error
}

type emailService struct {
	dialer    *gomail.Dialer
	from      string
	originURL string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, originURL string) Notifier {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:    dialer,
		from:      fromEmail,
		originURL: originURL,
	}
}

func (s *emailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendVerificationEmail(user *models.User, code int) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your email verification code is: <strong>%06d</strong></p>
		<p>This code will expire in 15 minutes.</p>
		<p>Best regards,<br>Attendify Team</p>
	`, user.FullName, code)

	if err := s.send(user.Email, "Email Verification - Attendify", body); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *emailService) SendPasswordResetEmail(user *models.User, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.originURL, token)
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>You requested to reset your password. Click the link below to reset it:</p>
		<p><a href="%s">%s</a></p>
		<p>This link will expire in 10 minutes.</p>
		<p>If you didn't request this, please ignore this email.</p>
		<p>Best regards,<br>Attendify Team</p>
	`, user.FullName, resetURL, resetURL)

	if err := s.send(user.Email, "Password Reset - Attendify", body); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func (s *emailService) SendApprovalEmail(user *models.User) error {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Great news! Your account has been approved and you can now access the Attendify system.</p>
		<p>You can login at: <a href="%s/login">%s/login</a></p>
		<p>Best regards,<br>Attendify Team</p>
	`, user.FullName, s.originURL, s.originURL)

	if err := s.send(user.Email, "Account Approved - Attendify", body); err != nil {
		return fmt.Errorf("failed to send approval email: %w", err)
	}
	return nil
}
