package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SerfiMolotov/MissDelice/entity"
)

// OrderIntake is the hand-off boundary for a composed draft. Any non-success
// is a uniform failure: there is no partial acceptance.
type OrderIntake interface {
	Submit(ctx context.Context, draft *entity.OrderDraft) error
}

// MailIntake notifies the manager of a new order by email; she confirms by
// phone. That IS the order pipeline for a shop this size.
type MailIntake struct {
	Mail Mailer
}

func NewMailIntake(mail Mailer) *MailIntake { return &MailIntake{Mail: mail} }

func (i *MailIntake) Submit(ctx context.Context, draft *entity.OrderDraft) error {
	subject := fmt.Sprintf("Nouvelle commande de %s (%s)", draft.Customer.Name, draft.TimeSlot)
	return i.Mail.Send(ctx, subject, orderHTML(draft))
}

func orderHTML(draft *entity.OrderDraft) string {
	var rows strings.Builder
	for _, it := range draft.Items {
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 6px 0;">%s</td>
        <td style="padding: 6px 0; text-align: right;">%d</td>
        <td style="padding: 6px 0; text-align: right;">%s</td>
        <td style="padding: 6px 0; text-align: right; font-weight: 600;">%s</td>
      </tr>
    `, it.Name, it.Quantity, FormatEuros(it.UnitPrice),
			FormatEuros(it.UnitPrice*int64(it.Quantity))))
	}

	mode := "Retrait sur place"
	if draft.Delivery {
		mode = "Livraison"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: sans-serif; color: #262622;">
  <h1 style="font-size: 22px;">Nouvelle commande</h1>
  <p><strong>%s</strong><br>%s<br>%s</p>
  <p>%s &mdash; %s &mdash; cr&eacute;neau <strong>%s</strong></p>
  <table width="100%%" cellpadding="0" cellspacing="0" border="0">
    <thead>
      <tr>
        <th style="text-align: left;">Produit</th>
        <th style="text-align: right;">Qt&eacute;</th>
        <th style="text-align: right;">Prix</th>
        <th style="text-align: right;">Total</th>
      </tr>
    </thead>
    <tbody>%s</tbody>
  </table>
  <p style="font-size: 18px;"><strong>Total : %s</strong> (paiement sur place)</p>
  <p style="color: #79776d;">Re&ccedil;ue le %s</p>
</body>
</html>
`, draft.Customer.Name, draft.Customer.Phone, draft.Customer.Email,
		mode, draft.Customer.Address, draft.TimeSlot,
		rows.String(),
		FormatEuros(draft.Total),
		draft.CreatedAt.Format("02/01/2006 15:04"))
}

// FormatEuros renders cents the French way: 350 -> "3,50€".
func FormatEuros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d€", sign, cents/100, cents%100)
}
