package notifications

import (
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/pkg/enums"
)

// SeedNotifications returns the notifications a fresh session starts with: one broadcast
// and one addressed to the first fixture account.
func SeedNotifications(data *fixtures.Dataset, now time.Time) []Notification {
	out := []Notification{{
		ID:            "n1",
		Title:         "Welcome to the GASH dashboard",
		Message:       "You are browsing demo data. Changes stay in this browser session.",
		Type:          enums.NotificationTypeSystem,
		RecipientType: enums.RecipientAll,
		CreatedAt:     now.UTC(),
	}}
	if accounts := data.Accounts.Values(); len(accounts) > 0 {
		out = append(out, Notification{
			ID:            "n2",
			Title:         "Your order has shipped",
			Message:       "Order is on the way and should arrive within 3 days.",
			Type:          enums.NotificationTypeOrder,
			RecipientType: enums.RecipientSpecific,
			UserID:        recipientOf(accounts[0]),
			CreatedAt:     now.UTC(),
		})
	}
	return out
}

func SeedTemplates(now time.Time) []Template {
	return []Template{
		{
			ID:        "t1",
			Name:      "Order shipped",
			Title:     "Your order has shipped",
			Message:   "Your order is on the way.",
			Type:      enums.NotificationTypeOrder,
			CreatedAt: now.UTC(),
			UpdatedAt: now.UTC(),
		},
		{
			ID:        "t2",
			Name:      "Weekend sale",
			Title:     "Weekend sale is live",
			Message:   "Save up to 30% on jackets this weekend.",
			Type:      enums.NotificationTypePromo,
			CreatedAt: now.UTC(),
			UpdatedAt: now.UTC(),
		},
	}
}

func recipientOf(acc fixtures.Account) *Recipient {
	return &Recipient{ID: acc.ID, Username: acc.Username, Email: acc.Email, FullName: acc.Name}
}
