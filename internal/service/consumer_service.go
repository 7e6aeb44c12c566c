package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-brainstorm-be/internal/dto"
	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/pkg/logger"
	"ai-brainstorm-be/internal/repository/unitofwork"
	"ai-brainstorm-be/pkg/events"
	pktNats "ai-brainstorm-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// BoardDelivery pushes real-time board updates to connected clients.
// Implemented by the websocket hub.
type BoardDelivery interface {
	Send(userID uuid.UUID, eventType string, detail map[string]interface{})
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process activity topic: every domain event
// becomes an activity_logs row and a websocket push to the project owner.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	delivery   BoardDelivery
	natsPub    *pktNats.Publisher
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	delivery BoardDelivery,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		delivery:   delivery,
		natsPub:    natsPub,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ActivityConsumer", "Failed to unmarshal activity message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.ActivityLog{
		Id:        uuid.New(),
		ProjectId: payload.ProjectId,
		UserId:    payload.UserId,
		EventType: payload.EventType,
		Detail:    payload.Detail,
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityLogRepository().Create(ctx, entry); err != nil {
		cs.logger.Error("ActivityConsumer", "Failed to persist activity log", map[string]interface{}{
			"error":      err.Error(),
			"event_type": payload.EventType,
		})
		// Nack so the bus retries; the websocket push below is best effort
		// and only happens once persistence succeeded.
		msg.Nack()
		return
	}

	if cs.delivery != nil {
		cs.delivery.Send(payload.UserId, payload.EventType, payload.Detail)
	}

	// Mirror to NATS for external consumers (analytics, audit)
	if cs.natsPub != nil {
		data := map[string]interface{}{
			"project_id": payload.ProjectId.String(),
			"user_id":    payload.UserId.String(),
		}
		for k, v := range payload.Detail {
			data[k] = v
		}
		if err := cs.natsPub.Publish(ctx, events.New(payload.EventType, data)); err != nil {
			cs.logger.Warn("ActivityConsumer", "Failed to mirror event to NATS", map[string]interface{}{
				"event_type": payload.EventType,
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}
