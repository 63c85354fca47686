package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/config"
)

// Mailer envía tickets de venta en PDF por SMTP. Queda deshabilitado cuando
// el host SMTP no está configurado, para que los despliegues sin correo no
// acumulen jobs fallidos.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
	if cfg.SMTPHost != "" {
		m.addr = fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	return m
}

// Enabled reports whether SMTP credentials were configured.
func (m *Mailer) Enabled() bool { return m.addr != "" }

// SendTicket manda el ticket al correo del cliente, con el PDF adjunto si
// existe.
func (m *Mailer) SendTicket(to, subject, body, pdfPath string) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer: SMTP no configurado")
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: adjuntar PDF: %w", err)
		}
	}

	return e.Send(m.addr, smtp.PlainAuth("", m.user, m.password, m.host))
}
