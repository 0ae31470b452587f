package leads

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisNotifier_PushesPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(&config.Config{RedisAddr: mr.Addr()})
	defer client.Close()

	n := NewRedisNotifier(client, "goldencitizen:leads")
	lead := &models.Lead{
		Reference: "ref-1",
		Name:      "Ayşe",
		Email:     "ayse@example.com",
		Phone:     "0532",
		Subject:   models.DefaultLeadSubject,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, n.NotifyLead(context.Background(), lead))
	require.NoError(t, n.NotifyLead(context.Background(), &models.Lead{Reference: "ref-2"}))

	items, err := mr.List("goldencitizen:leads")
	require.NoError(t, err)
	require.Len(t, items, 2)

	var got LeadNotification
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, "ref-1", got.Reference)
	assert.Equal(t, "ayse@example.com", got.Email)
	assert.Equal(t, string(models.DefaultLeadSubject), got.Subject)
}

func TestRedisNotifier_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(&config.Config{RedisAddr: mr.Addr()})
	defer client.Close()
	mr.Close()

	n := NewRedisNotifier(client, "goldencitizen:leads")
	err := n.NotifyLead(context.Background(), &models.Lead{Reference: "ref-1"})
	assert.Error(t, err)
}
