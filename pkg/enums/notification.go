package enums

import "fmt"

// NotificationType labels admin notifications. The dashboard only sends "system" but
// renders whatever it gets back.
type NotificationType string

const (
	NotificationTypeSystem NotificationType = "system"
	NotificationTypeOrder  NotificationType = "order"
	NotificationTypePromo  NotificationType = "promotion"
)

var validNotificationTypes = []NotificationType{
	NotificationTypeSystem,
	NotificationTypeOrder,
	NotificationTypePromo,
}

// IsValid checks whether the given type matches the canonical enum.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationType converts the raw string into a NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	for _, candidate := range validNotificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification type %q", value)
}

// RecipientType selects who an admin notification is addressed to.
type RecipientType string

const (
	RecipientAll      RecipientType = "all"
	RecipientSpecific RecipientType = "specific"
	RecipientMultiple RecipientType = "multiple"
)

var validRecipientTypes = []RecipientType{RecipientAll, RecipientSpecific, RecipientMultiple}

func (r RecipientType) IsValid() bool {
	for _, candidate := range validRecipientTypes {
		if candidate == r {
			return true
		}
	}
	return false
}
