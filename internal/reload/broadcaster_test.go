package reload

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterDeliversPlanSwapEvents(t *testing.T) {
	broadcaster := NewBroadcaster()
	server := httptest.NewServer(broadcaster)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + server.URL[len("http"):]
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	assert.Eventually(t, func() bool {
		return broadcaster.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	broadcaster.Broadcast(ctx, Event{Type: "plan-swap", Scripts: 4})

	_, payload, err := conn.Read(ctx)
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "plan-swap", event.Type)
	assert.Equal(t, 4, event.Scripts)
}

func TestBroadcasterNoClients(t *testing.T) {
	broadcaster := NewBroadcaster()
	assert.Equal(t, 0, broadcaster.ClientCount())

	// Broadcasting without clients is a no-op.
	broadcaster.Broadcast(context.Background(), Event{Type: "plan-swap"})
}
