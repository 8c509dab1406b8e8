// Package mailer delivers quotation emails with the rendered PDF attached.
package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
)

// Config holds SMTP settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// Message is one outbound email with an optional PDF attachment.
type Message struct {
	To             string
	Subject        string
	HTML           string
	AttachmentName string
	Attachment     []byte
}

// Mailer sends quotation emails. The checkout pipeline treats failures as
// non-fatal and retries a bounded number of times.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends mail over plain SMTP with auth.
type SMTPMailer struct {
	cfg Config
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := m.buildMessage(msg)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{msg.To}, body); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	return nil
}

// buildMessage assembles a multipart/mixed MIME message: the HTML body
// first, then the PDF attachment base64-encoded.
func (m *SMTPMailer) buildMessage(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", w.Boundary())

	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", `text/html; charset="UTF-8"`)
	part, err := w.CreatePart(htmlHeader)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(msg.HTML)); err != nil {
		return nil, err
	}

	if len(msg.Attachment) > 0 {
		attachHeader := textproto.MIMEHeader{}
		attachHeader.Set("Content-Type", "application/pdf")
		attachHeader.Set("Content-Transfer-Encoding", "base64")
		attachHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", msg.AttachmentName))
		part, err := w.CreatePart(attachHeader)
		if err != nil {
			return nil, err
		}
		enc := base64.NewEncoder(base64.StdEncoding, part)
		if _, err := enc.Write(msg.Attachment); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
