package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/lavexpress/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Config настройки SMTP-подключения и адресатов уведомлений
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// Mailer отправляет персоналу уведомления о новых бронированиях
//
// Уведомления best-effort: ошибка отправки логируется вызывающей стороной
// и никогда не влияет на судьбу самой брони
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	log    Logger
}

// New создает новый экземпляр Mailer
// При Enabled=false отправка превращается в no-op, удобно для локальной разработки
func New(cfg Config, log Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		log:    log,
	}
}

// NotifyNewReservation отправляет персоналу письмо о новой брони
func (m *Mailer) NotifyNewReservation(res *domain.Reservation) error {
	if !m.cfg.Enabled {
		m.log.Info("Mailer disabled, skipping notification for reservation id=%d", res.ID)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To...)
	msg.SetHeader("Subject", fmt.Sprintf("Nouvelle réservation #%d - %s %s",
		res.ID, res.Date.Format(domain.DateFormat), res.StartTime))
	msg.SetBody("text/plain", buildBody(res))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.log.Info("Staff notified about reservation id=%d", res.ID)
	return nil
}

func buildBody(res *domain.Reservation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Nouvelle réservation #%d\n\n", res.ID)
	fmt.Fprintf(&b, "Client : %s %s\n", res.FirstName, res.LastName)
	fmt.Fprintf(&b, "Email : %s\n", res.Email)
	fmt.Fprintf(&b, "Téléphone : %s\n", res.Phone)
	fmt.Fprintf(&b, "Adresse : %s\n\n", res.Address)
	fmt.Fprintf(&b, "Véhicule : %s (%s)\n", res.CarBrand, res.VehicleCategory)
	fmt.Fprintf(&b, "Formule : %s\n", res.Formula)
	fmt.Fprintf(&b, "Prix : %.2f EUR\n\n", res.Price)
	fmt.Fprintf(&b, "Date : %s\n", res.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Heure : %s\n", res.StartTime)

	if len(res.Options) > 0 {
		b.WriteString("\nOptions :\n")
		for _, opt := range res.Options {
			switch opt.Kind {
			case domain.OptionKindQuantity:
				fmt.Fprintf(&b, "  - %s x%d\n", opt.Name, opt.Quantity)
			case domain.OptionKindQuote:
				fmt.Fprintf(&b, "  - %s (sur devis)\n", opt.Name)
			default:
				fmt.Fprintf(&b, "  - %s\n", opt.Name)
			}
		}
	}

	if res.Comments != "" {
		fmt.Fprintf(&b, "\nCommentaires :\n%s\n", res.Comments)
	}

	return b.String()
}
