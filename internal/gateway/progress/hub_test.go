package progress

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// dialPair upgrades one server-side connection and returns both ends.
func dialPair(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()
	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		accepted <- ws
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return <-accepted, client
}

func readEvent(t *testing.T, client *websocket.Conn) string {
	t.Helper()
	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	return string(msg)
}

func TestHubHistoryReplay(t *testing.T) {
	h := NewHub(0)
	h.Publish("req-1", "drafting")
	h.Publish("req-1", "reconciling")
	h.Publish("req-2", "drafting")

	server, client := dialPair(t)
	missed := h.Join("req-1", server)
	require.Len(t, missed, 2)
	require.Equal(t, "drafting", missed[0].Stage)
	require.Equal(t, "reconciling", missed[1].Stage)
	require.Equal(t, "req-1", missed[0].RequestID)
	require.False(t, missed[0].At.IsZero())

	// Join itself wrote the replay to the socket.
	require.Contains(t, readEvent(t, client), `"stage":"drafting"`)
	require.Contains(t, readEvent(t, client), `"stage":"reconciling"`)
}

func TestHubSingleWriterUnderConcurrentPublish(t *testing.T) {
	h := NewHub(0)
	for i := 0; i < 10; i++ {
		h.Publish("req-1", "drafting")
	}
	server, client := dialPair(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			h.Publish("req-1", "enriching")
		}
		h.Publish("req-1", "done")
	}()
	h.Join("req-1", server)
	wg.Wait()

	// Replay and fan-out share the hub lock, so every frame arrives intact
	// no matter how a publish interleaves with the join.
	for {
		msg := readEvent(t, client)
		require.Contains(t, msg, `"request_id":"req-1"`)
		if strings.Contains(msg, `"stage":"done"`) {
			return
		}
	}
}

func TestHubHistoryBounded(t *testing.T) {
	h := NewHub(3)
	for _, stage := range []string{"a", "b", "c", "d", "e"} {
		h.Publish("req-1", stage)
	}
	server, _ := dialPair(t)
	missed := h.Join("req-1", server)
	require.Len(t, missed, 3)
	require.Equal(t, "c", missed[0].Stage)
	require.Equal(t, "e", missed[2].Stage)
}

func TestHubFanOut(t *testing.T) {
	h := NewHub(0)
	serverA, clientA := dialPair(t)
	serverB, clientB := dialPair(t)
	h.Join("req-1", serverA)
	h.Join("req-1", serverB)

	h.Publish("req-1", "enriching")

	for _, client := range []*websocket.Conn{clientA, clientB} {
		msg := readEvent(t, client)
		require.Contains(t, msg, `"stage":"enriching"`)
		require.Contains(t, msg, `"request_id":"req-1"`)
	}
}

func TestHubReapsFinishedStreams(t *testing.T) {
	h := NewHub(0)
	server, _ := dialPair(t)
	h.Join("req-1", server)
	h.Publish("req-1", "drafting")
	h.Publish("req-1", "done")

	h.mu.Lock()
	_, alive := h.streams["req-1"]
	h.mu.Unlock()
	require.True(t, alive, "stream stays while a client is attached")

	h.Leave("req-1", server)
	h.mu.Lock()
	_, alive = h.streams["req-1"]
	h.mu.Unlock()
	require.False(t, alive, "finished stream is reaped when the last client leaves")
}
