package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

var upgrader = websocket.Upgrader{}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		// simple echo
		_ = c.WriteMessage(mt, message)
	}
}

func TestClient_ConnectAndSend(t *testing.T) {
	// Start a mock WS server that echoes messages
	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer s.Close()

	// Convert http URL to ws URL
	wsURL := "ws" + strings.TrimPrefix(s.URL, "http")

	client := NewClient(wsURL, "g1", "alice")
	require.NotNil(t, client)

	err := client.Connect()
	require.NoError(t, err)
	defer client.Close()

	time.Sleep(100 * time.Millisecond)
	assert.True(t, client.IsConnected())

	// The echo server bounces the ask back at us verbatim
	err = client.Ask("bob", 7, "hearts")
	require.NoError(t, err)

	receivedMsg, err := client.ReceiveWithTimeout(1 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgAsk, receivedMsg.Type)

	payload, err := protocol.ParsePayload[protocol.AskPayload](receivedMsg)
	require.NoError(t, err)
	assert.Equal(t, "bob", payload.Target)
	assert.Equal(t, 7, payload.Rank)
}

func TestClient_SendAfterClose(t *testing.T) {
	client := NewClient("ws://localhost:0/ws/g1/alice", "g1", "alice")
	client.Close()

	assert.Error(t, client.Join())
	assert.False(t, client.IsConnected())

	_, err := client.Receive()
	assert.Error(t, err)
}
