package notifications

import (
	"time"

	"github.com/angelmondragon/gash-demo/pkg/enums"
)

// Recipient is the account a notification is addressed to, as the dashboard renders it.
type Recipient struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type Notification struct {
	ID            string                 `json:"_id"`
	Title         string                 `json:"title"`
	Message       string                 `json:"message"`
	Type          enums.NotificationType `json:"type"`
	RecipientType enums.RecipientType    `json:"recipientType"`
	UserID        *Recipient             `json:"userId"`
	CreatedAt     time.Time              `json:"createdAt"`
}

type Template struct {
	ID        string                 `json:"_id"`
	Name      string                 `json:"name"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      enums.NotificationType `json:"type"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// CreateInput is the body of POST /notifications/admin/create.
type CreateInput struct {
	Title         string                 `json:"title" validate:"required"`
	Message       string                 `json:"message" validate:"required"`
	Type          enums.NotificationType `json:"type" validate:"omitempty,oneof=system order promotion"`
	RecipientType enums.RecipientType    `json:"recipientType" validate:"required,oneof=all specific multiple"`
	UserID        string                 `json:"userId" validate:"required_if=RecipientType specific"`
	UserIDs       []string               `json:"userIds" validate:"required_if=RecipientType multiple,omitempty,min=1,dive,required"`
}

type TemplateInput struct {
	Name    string                 `json:"name" validate:"required"`
	Title   string                 `json:"title" validate:"required"`
	Message string                 `json:"message" validate:"required"`
	Type    enums.NotificationType `json:"type" validate:"omitempty,oneof=system order promotion"`
}

// TemplatePatch updates only the fields that are present.
type TemplatePatch struct {
	Name    *string                 `json:"name" validate:"omitempty,min=1"`
	Title   *string                 `json:"title" validate:"omitempty,min=1"`
	Message *string                 `json:"message" validate:"omitempty,min=1"`
	Type    *enums.NotificationType `json:"type" validate:"omitempty,oneof=system order promotion"`
}
