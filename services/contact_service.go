package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/SerfiMolotov/MissDelice/repository"
)

// ContactCooldown is the minimum spacing between two messages from the same
// visitor session.
const ContactCooldown = 60 * time.Second

type ContactService struct {
	Cooldowns repository.CooldownStore
	Mail      Mailer
	now       func() time.Time
}

func NewContactService(cooldowns repository.CooldownStore, mail Mailer) *ContactService {
	return &ContactService{Cooldowns: cooldowns, Mail: mail, now: time.Now}
}

type ContactIn struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Send relays a contact-form message, rate limited per session.
func (s *ContactService) Send(ctx context.Context, sessionID string, in ContactIn) error {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	last, ok, err := s.Cooldowns.LastSent(ctx, sessionID)
	if err != nil {
		return err
	}
	if ok {
		if left := RemainingCooldown(time.Unix(last, 0), s.now(), ContactCooldown); left > 0 {
			return fmt.Errorf("%w: %s", ErrCooldownActive, left.Round(time.Second))
		}
	}

	subject := fmt.Sprintf("Message de %s", in.Name)
	if err := s.Mail.Send(ctx, subject, contactHTML(in)); err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionNetwork, err)
	}

	return s.Cooldowns.MarkSent(ctx, sessionID, s.now().Unix())
}

// RemainingCooldown tells how long a sender still has to wait, zero when the
// window has passed.
func RemainingCooldown(lastSent, now time.Time, d time.Duration) time.Duration {
	left := d - now.Sub(lastSent)
	if left < 0 {
		return 0
	}
	return left
}

func contactHTML(in ContactIn) string {
	msg := strings.ReplaceAll(html.EscapeString(in.Message), "\n", "<br>")
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: sans-serif; color: #262622;">
  <h1 style="font-size: 22px;">Nouveau message</h1>
  <p><strong>%s</strong> &lt;%s&gt;</p>
  <p>%s</p>
</body>
</html>
`, html.EscapeString(in.Name), html.EscapeString(in.Email), msg)
}
