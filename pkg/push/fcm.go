package push

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"
)

// FCMClient sends notifications through Firebase Cloud Messaging
// (HTTP v1 API).
type FCMClient struct {
	service   *fcm.Service
	projectID string
}

// NewFCMFromCredentialsFile creates an FCM client from a Service
// Account JSON file path.
func NewFCMFromCredentialsFile(ctx context.Context, credentialsPath, projectID string) (*FCMClient, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewFCMFromCredentialsJSON(ctx, data, projectID)
}

// NewFCMFromCredentialsJSON creates an FCM client from raw Service
// Account JSON bytes.
func NewFCMFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, projectID string) (*FCMClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("fcm project id is required")
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, fcm.FirebaseMessagingScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := fcm.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm service: %w", err)
	}

	return &FCMClient{service: svc, projectID: projectID}, nil
}

// Send delivers one notification to an FCM registration token.
func (c *FCMClient) Send(ctx context.Context, msg Message) error {
	req := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: msg.Token,
			Notification: &fcm.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		},
	}

	parent := fmt.Sprintf("projects/%s", c.projectID)
	if _, err := c.service.Projects.Messages.Send(parent, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send fcm message: %w", err)
	}

	return nil
}
