package services

import (
	"context"
	"fmt"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/domain/entities"
	"lead-dispatcher/internal/infra/logger"
	"lead-dispatcher/internal/infra/provider"
	"sync"

	"github.com/sirupsen/logrus"
)

type Delivery struct {
	Target entities.ChatTarget
	Text   string
}

type DeliveryResult struct {
	Target entities.ChatTarget
	Result dto.TelegramSendResult
}

type NotificationDispatcher struct {
	Logger   *logger.Logger
	Notifier provider.INotifier
}

func NewNotificationDispatcher(logger *logger.Logger, notifier provider.INotifier) *NotificationDispatcher {
	return &NotificationDispatcher{Logger: logger, Notifier: notifier}
}

// Dispatch sends every delivery concurrently and waits for all of them.
// Results are returned in the order of deliveries. A panicking send is
// recovered and reported as a failed result so it cannot affect the others.
func (nd *NotificationDispatcher) Dispatch(ctx context.Context, deliveries []Delivery) []DeliveryResult {
	results := make([]DeliveryResult, len(deliveries))
	log := nd.Logger.ForContext(ctx)

	var wg sync.WaitGroup
	for i, d := range deliveries {
		results[i].Target = d.Target

		wg.Add(1)
		go func(i int, d Delivery) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error(fmt.Sprintf("Recovered from panic while sending to %s chat: %v", d.Target.Role, r))
					results[i].Result = dto.FailedSend(fmt.Sprintf("panic: %v", r))
				}
			}()

			results[i].Result = nd.Notifier.SendMessage(ctx, d.Target.ChatID, d.Text)
		}(i, d)
	}
	wg.Wait()

	for _, r := range results {
		fields := logrus.Fields{"chat": string(r.Target.Role), "chat_id": r.Target.ChatID}
		if r.Result.OK {
			log.Debug("Notification delivered", fields)
			continue
		}
		fields["description"] = r.Result.Description
		if r.Target.Role == entities.ChatSecondary {
			log.Warn("Notification to secondary chat failed", fields)
		} else {
			log.Error("Notification to primary chat failed", fields)
		}
	}

	return results
}
