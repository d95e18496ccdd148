package notification

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// FirebaseParams holds dependencies for the Firebase service
type FirebaseParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(params FirebaseParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	params.Logger.Info("Firebase messaging initialized", slog.String("project_id", cfg.ProjectID))

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]service.PushResult, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > service.MaxPushBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	results := make([]service.PushResult, len(tokens))
	for idx, token := range tokens {
		results[idx].Token = token
	}

	for idx, sendResponse := range response.Responses {
		if idx >= len(results) {
			break
		}
		if sendResponse.Success {
			results[idx].MessageID = sendResponse.MessageID

			continue
		}

		results[idx].Err = sendResponse.Error
		// Invalid or unregistered tokens will never succeed
		results[idx].Invalid = messaging.IsInvalidArgument(sendResponse.Error) ||
			messaging.IsUnregistered(sendResponse.Error)
	}

	return results, nil
}
