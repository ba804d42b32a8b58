package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/observability"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisRelay_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	relay := NewRedisRelay(pub, "helpdesk.tickets.priority", nil, observability.NewMetrics())

	event := NewEvent(EventTicketPriorityAssigned, "TCK-ABCDEF12", PriorityAssignedPayload{
		IssueType:       domain.IssueTypeTechnicalOutage,
		ProblemCategory: "hardware error",
		Priority:        domain.SeverityCritical,
		Source:          "category_default",
		Scores:          map[domain.Severity]int{domain.SeverityCritical: 0},
	})
	require.NoError(t, relay.Relay(context.Background(), event))
	assert.Equal(t, "helpdesk.tickets.priority", pub.channel)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.message, &decoded))
	assert.Equal(t, "ticket_priority_assigned", decoded["type"])
	assert.Equal(t, "TCK-ABCDEF12", decoded["ticket_key"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "critical", payload["priority"])
	assert.Equal(t, "hardware error", payload["problem_category"])
}

func TestRedisRelay_PropagatesPublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	relay := NewRedisRelay(pub, "tickets", nil, nil)

	err := relay.Relay(context.Background(), NewEvent(EventTicketPriorityAssigned, "TCK-1", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
