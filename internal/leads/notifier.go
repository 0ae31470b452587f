package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Notifier forwards a stored lead to whoever follows up on it.
type Notifier interface {
	NotifyLead(ctx context.Context, lead *models.Lead) error
}

// LeadNotification is the payload pushed onto the queue.
type LeadNotification struct {
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func newNotification(lead *models.Lead) LeadNotification {
	return LeadNotification{
		Reference: lead.Reference,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Subject:   string(lead.Subject),
		Message:   lead.Message,
		CreatedAt: lead.CreatedAt,
	}
}

// RedisNotifier appends notifications to a Redis list consumed by the
// sales follow-up worker.
type RedisNotifier struct {
	client *redis.Client
	key    string
}

func NewRedisNotifier(client *redis.Client, key string) *RedisNotifier {
	return &RedisNotifier{client: client, key: key}
}

func (n *RedisNotifier) NotifyLead(ctx context.Context, lead *models.Lead) error {
	payload, err := json.Marshal(newNotification(lead))
	if err != nil {
		return fmt.Errorf("lead bildirimi hazırlanamadı: %w", err)
	}
	if err := n.client.RPush(ctx, n.key, payload).Err(); err != nil {
		return fmt.Errorf("lead bildirimi kuyruğa yazılamadı: %w", err)
	}
	return nil
}

// LogNotifier is used when no Redis is configured.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyLead(_ context.Context, lead *models.Lead) error {
	n.log.Info("Yeni iletişim formu", map[string]interface{}{
		"reference": lead.Reference,
		"name":      lead.Name,
		"email":     lead.Email,
		"subject":   lead.Subject,
	})
	return nil
}

// NewRedisClient builds the client from server config; bağlantı main'de ping'lenir.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}
