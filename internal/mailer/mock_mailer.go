package mailer

import (
	"sync"
)

// SentEmail is a message accepted by MockMailer, already rendered.
type SentEmail struct {
	Recipient    string
	TemplateFile string
	Subject      string
	Data         any
}

// MockMailer renders every message like SMTPMailer does but keeps it in
// memory instead of delivering it.
type MockMailer struct {
	mu     sync.RWMutex
	emails []SentEmail
	Err    error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	subject, _, _, err := render(templateFile, data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.emails = append(m.emails, SentEmail{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Subject:      subject,
		Data:         data,
	})

	return nil
}

func (m *MockMailer) SentEmails() []SentEmail {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emails := make([]SentEmail, len(m.emails))
	copy(emails, m.emails)

	return emails
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = nil
}
