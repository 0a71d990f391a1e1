package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"storyvault/internal/board"
)

// MailService delivers the manage-links mail over SMTP. It satisfies
// board.Notifier; the lifecycle treats every failure as non-fatal.
type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

// SendManageLinks mails the edit and delete URLs to the post author.
func (s *MailService) SendManageLinks(toEmail, editURL, deleteURL string) error {
	body := fmt.Sprintf(board.MailText, editURL, deleteURL)
	return s.send(toEmail, board.MailSubject, body)
}

func (s *MailService) send(to, subject, body string) error {
	if !s.Enabled {
		return nil
	}

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: StoryVault <%s>\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
		"\r\n%s", to, s.From, subject, body))

	if err := smtp.SendMail(addr, auth, s.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	log.Printf("Manage-links mail sent to %s", to)
	return nil
}
