package notification

import (
	"context"
	"fmt"

	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmProvider struct {
	client *messaging.Client
}

// NewFCMProvider creates a new FCM push provider instance
func NewFCMProvider(ctx context.Context, credentialsPath string) (service.PushProvider, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmProvider{
		client: client,
	}, nil
}

// SendOne sends a push notification to a single device token
func (p *fcmProvider) SendOne(ctx context.Context, token string, payload *service.PushPayload) (bool, service.ErrorKind, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data:    payload.Data,
		Android: androidConfig(payload.Priority),
	}

	_, err := p.client.Send(ctx, message)
	if err != nil {
		return false, classifyError(err), fmt.Errorf("failed to send notification: %w", err)
	}

	return true, service.ErrorKindNone, nil
}

// SendBatch sends push notifications to multiple device tokens (max 500 tokens)
func (p *fcmProvider) SendBatch(ctx context.Context, tokens []string, payload *service.PushPayload) ([]service.RecipientResult, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > service.MaxBatchTokens {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data:    payload.Data,
		Android: androidConfig(payload.Priority),
	}

	response, err := p.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	results := make([]service.RecipientResult, len(tokens))
	for idx, sendResponse := range response.Responses {
		result := service.RecipientResult{Token: tokens[idx]}
		if sendResponse.Error != nil {
			result.Kind = classifyError(sendResponse.Error)
		} else {
			result.OK = true
		}
		results[idx] = result
	}

	return results, nil
}

func androidConfig(priority string) *messaging.AndroidConfig {
	if priority == "" {
		return nil
	}

	return &messaging.AndroidConfig{Priority: priority}
}

func classifyError(err error) service.ErrorKind {
	if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
		return service.ErrorKindInvalidToken
	}

	return service.ErrorKindTransient
}
