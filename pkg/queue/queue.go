// Package queue is the AMQP adapter for the durable priority task queue.
// The queue is declared once with fixed arguments and only ever inspected
// passively afterwards, so a Producer restart can never re-declare it with
// conflicting arguments.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/agnox-io/agnox/pkg/models"
)

// MaxPriority is the queue's x-max-priority argument. Published priorities
// are clamped into [1, MaxPriority].
const MaxPriority = 10

// Task priorities by trigger. Higher runs first.
const (
	PriorityManual   = 5
	PriorityWebhook  = 3
	PriorityCron     = 2
	PriorityPrefetch = 1
)

// PriorityForTrigger maps a trigger to its queue priority.
func PriorityForTrigger(trigger string) int {
	switch trigger {
	case models.TriggerManual:
		return PriorityManual
	case models.TriggerWebhook, models.TriggerGitHub, models.TriggerGitLab, models.TriggerJenkins:
		return PriorityWebhook
	case models.TriggerCron:
		return PriorityCron
	default:
		return PriorityManual
	}
}

// ClampPriority bounds a priority to the queue's valid range.
func ClampPriority(p int) int {
	if p < 1 {
		return 1
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}

// Stats is a passive snapshot of the queue.
type Stats struct {
	MessageCount  int `json:"messageCount"`
	ConsumerCount int `json:"consumerCount"`
}

// TaskPublisher is the interface the dispatch pipeline publishes through.
type TaskPublisher interface {
	Publish(ctx context.Context, task models.TaskMessage, priority int) error
	Stats(ctx context.Context) (Stats, error)
}

// Publisher publishes persistent task messages to the priority queue over a
// single AMQP channel. A failed publish re-opens the channel once before
// giving up.
type Publisher struct {
	url       string
	queueName string
	logger    *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects to the broker and declares the queue.
func NewPublisher(url, queueName string, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{
		url:       url,
		queueName: queueName,
		logger:    logger.With("component", "queue"),
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	// Idempotent declare with the fixed arguments. Changing these is a
	// breaking migration and requires deleting the queue first.
	_, err = channel.QueueDeclare(
		p.queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp.Table{"x-max-priority": int32(MaxPriority)},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", p.queueName, err)
	}

	p.conn = conn
	p.channel = channel
	p.logger.Info("Connected to task queue", "queue", p.queueName)
	return nil
}

// Publish sends a task as a persistent message at the clamped priority.
func (p *Publisher) Publish(ctx context.Context, task models.TaskMessage, priority int) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Priority:     uint8(ClampPriority(priority)),
		Body:         body,
	}

	err = p.channel.PublishWithContext(ctx, "", p.queueName, false, false, publishing)
	if err != nil {
		// One reconnect attempt; the channel may have been closed by the
		// broker since the last publish.
		p.logger.Warn("Publish failed, reconnecting", "error", err)
		if rerr := p.reconnectLocked(); rerr != nil {
			return fmt.Errorf("publish task %s: %w", task.TaskID, err)
		}
		if err := p.channel.PublishWithContext(ctx, "", p.queueName, false, false, publishing); err != nil {
			return fmt.Errorf("publish task %s: %w", task.TaskID, err)
		}
	}

	p.logger.Debug("Published task",
		"task_id", task.TaskID,
		"org_id", task.OrganizationID,
		"priority", ClampPriority(priority))
	return nil
}

// Stats inspects the queue passively. It never re-declares with arguments.
func (p *Publisher) Stats(ctx context.Context) (Stats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	q, err := p.channel.QueueDeclarePassive(p.queueName, true, false, false, false, nil)
	if err != nil {
		if rerr := p.reconnectLocked(); rerr != nil {
			return Stats{}, fmt.Errorf("inspect queue: %w", err)
		}
		q, err = p.channel.QueueDeclarePassive(p.queueName, true, false, false, false, nil)
		if err != nil {
			return Stats{}, fmt.Errorf("inspect queue: %w", err)
		}
	}
	return Stats{MessageCount: q.Messages, ConsumerCount: q.Consumers}, nil
}

func (p *Publisher) reconnectLocked() error {
	p.closeLocked()
	return p.connect()
}

// Close tears down the channel and connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *Publisher) closeLocked() {
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}
