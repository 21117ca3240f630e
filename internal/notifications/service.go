package notifications

import (
	"context"
	"slices"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/internal/overlay"
	"github.com/angelmondragon/gash-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/google/uuid"
)

var (
	errNotificationNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "Notification not found")
	errTemplateNotFound     = pkgerrors.New(pkgerrors.CodeNotFound, "Template not found")
)

// ServiceParams groups dependencies for the notifications service.
type ServiceParams struct {
	Data          *fixtures.Dataset
	Notifications *overlay.Overlay[Notification]
	Templates     *overlay.Overlay[Template]
	NewID         func() string
	Now           func() time.Time
}

// Service backs the admin notifications page.
type Service interface {
	List(ctx context.Context) ([]Notification, error)
	Create(ctx context.Context, input CreateInput) ([]Notification, error)
	Delete(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]Template, error)
	CreateTemplate(ctx context.Context, input TemplateInput) (Template, error)
	UpdateTemplate(ctx context.Context, id string, patch TemplatePatch) (Template, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type service struct {
	data          *fixtures.Dataset
	notifications *overlay.Overlay[Notification]
	templates     *overlay.Overlay[Template]
	newID         func() string
	now           func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "fixture dataset required")
	}
	if params.Notifications == nil || params.Templates == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notification overlays required")
	}
	if params.NewID == nil {
		params.NewID = uuid.NewString
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		data:          params.Data,
		notifications: params.Notifications,
		templates:     params.Templates,
		newID:         params.NewID,
		now:           params.Now,
	}, nil
}

// List returns notifications newest first.
func (s *service) List(ctx context.Context) ([]Notification, error) {
	all, err := s.notifications.Load(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(all)
	return all, nil
}

// Create stores one notification for a broadcast, or one per addressed user.
func (s *service) Create(ctx context.Context, input CreateInput) ([]Notification, error) {
	if input.Title == "" || input.Message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title and message are required")
	}
	if input.Type == "" {
		input.Type = enums.NotificationTypeSystem
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid notification type")
	}

	recipients, err := s.recipients(input)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created := make([]Notification, len(recipients))
	for i, r := range recipients {
		created[i] = Notification{
			ID:            s.newID(),
			Title:         input.Title,
			Message:       input.Message,
			Type:          input.Type,
			RecipientType: input.RecipientType,
			UserID:        r,
			CreatedAt:     now,
		}
	}
	if _, err := s.notifications.Update(ctx, func(all []Notification) ([]Notification, error) {
		return append(all, created...), nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// recipients returns a nil entry for a broadcast.
func (s *service) recipients(input CreateInput) ([]*Recipient, error) {
	var ids []string
	switch input.RecipientType {
	case enums.RecipientAll:
		return []*Recipient{nil}, nil
	case enums.RecipientSpecific:
		if input.UserID == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "userId is required")
		}
		ids = []string{input.UserID}
	case enums.RecipientMultiple:
		for _, id := range input.UserIDs {
			if id != "" && !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "userIds is required")
		}
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid recipient type")
	}

	out := make([]*Recipient, 0, len(ids))
	for _, id := range ids {
		acc, ok := s.data.FindAccount(id)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found").
				WithDetails(map[string]string{"userId": id})
		}
		out = append(out, recipientOf(acc))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.notifications.Update(ctx, func(all []Notification) ([]Notification, error) {
		idx := slices.IndexFunc(all, func(n Notification) bool { return n.ID == id })
		if idx < 0 {
			return nil, errNotificationNotFound
		}
		return slices.Delete(all, idx, idx+1), nil
	})
	return err
}

func (s *service) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.templates.Load(ctx)
}

func (s *service) CreateTemplate(ctx context.Context, input TemplateInput) (Template, error) {
	if input.Name == "" || input.Title == "" || input.Message == "" {
		return Template{}, pkgerrors.New(pkgerrors.CodeValidation, "name, title and message are required")
	}
	if input.Type == "" {
		input.Type = enums.NotificationTypeSystem
	}
	now := s.now().UTC()
	tpl := Template{
		ID:        s.newID(),
		Name:      input.Name,
		Title:     input.Title,
		Message:   input.Message,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.templates.Update(ctx, func(all []Template) ([]Template, error) {
		return append(all, tpl), nil
	}); err != nil {
		return Template{}, err
	}
	return tpl, nil
}

func (s *service) UpdateTemplate(ctx context.Context, id string, patch TemplatePatch) (Template, error) {
	var updated Template
	_, err := s.templates.Update(ctx, func(all []Template) ([]Template, error) {
		idx := slices.IndexFunc(all, func(t Template) bool { return t.ID == id })
		if idx < 0 {
			return nil, errTemplateNotFound
		}
		tpl := all[idx]
		if patch.Name != nil {
			tpl.Name = *patch.Name
		}
		if patch.Title != nil {
			tpl.Title = *patch.Title
		}
		if patch.Message != nil {
			tpl.Message = *patch.Message
		}
		if patch.Type != nil {
			tpl.Type = *patch.Type
		}
		tpl.UpdatedAt = s.now().UTC()
		all[idx] = tpl
		updated = tpl
		return all, nil
	})
	return updated, err
}

func (s *service) DeleteTemplate(ctx context.Context, id string) error {
	_, err := s.templates.Update(ctx, func(all []Template) ([]Template, error) {
		idx := slices.IndexFunc(all, func(t Template) bool { return t.ID == id })
		if idx < 0 {
			return nil, errTemplateNotFound
		}
		return slices.Delete(all, idx, idx+1), nil
	})
	return err
}
