package service

type MailerService interface {
	Send(to, subject, body string) error
}
