package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"do-or-sip/internal/config"
	"do-or-sip/internal/db"
)

// memCatalog is an in-memory Catalog so tests run without Postgres.
type memCatalog struct {
	games map[uint]db.Game
	cards map[uint][]db.Card
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		games: make(map[uint]db.Game),
		cards: make(map[uint][]db.Card),
	}
}

func (m *memCatalog) addGame(id uint, name string, cards ...db.Card) {
	m.games[id] = db.Game{ID: id, Name: name}
	for i := range cards {
		cards[i].ID = uint(len(m.cards[id]) + 1)
		cards[i].GameID = id
		m.cards[id] = append(m.cards[id], cards[i])
	}
}

func (m *memCatalog) ListGames() ([]db.GameSummary, error) {
	summaries := make([]db.GameSummary, 0, len(m.games))
	for id := uint(1); int(id) <= len(m.games); id++ {
		game, ok := m.games[id]
		if !ok {
			continue
		}
		summaries = append(summaries, db.GameSummary{
			ID:          game.ID,
			Name:        game.Name,
			Description: game.Description,
			CardsCount:  len(m.cards[id]),
		})
	}
	return summaries, nil
}

func (m *memCatalog) GetGame(id uint) (*db.Game, error) {
	game, ok := m.games[id]
	if !ok {
		return nil, nil
	}
	return &game, nil
}

func (m *memCatalog) ListCards(gameID uint) ([]db.Card, error) {
	cards := make([]db.Card, len(m.cards[gameID]))
	copy(cards, m.cards[gameID])
	return cards, nil
}

func testCard(imagePath string, drinkPoints, actionPoints int) db.Card {
	return db.Card{
		ImagePath:    imagePath,
		CardType:     db.CardTypeDoOrDrink,
		DrinkPoints:  drinkPoints,
		ActionPoints: actionPoints,
	}
}

// testCatalog seeds the fixture games the tests share: game 1 has three
// cards, game 2 has one card, game 3 has none.
func testCatalog() *memCatalog {
	catalog := newMemCatalog()
	catalog.addGame(1, "House Party",
		testCard("cards/1/a.webp", 2, 3),
		testCard("cards/1/b.webp", 2, 3),
		testCard("cards/1/c.webp", 2, 3),
	)
	catalog.addGame(2, "Speed Round", testCard("cards/2/a.webp", 1, 1))
	catalog.addGame(3, "Empty Box")
	return catalog
}

func newCoreServer(t *testing.T) *Server {
	t.Helper()
	return New(nil, testCatalog(), config.Default())
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func createRoom(t *testing.T, ts *httptest.Server, gameID uint, host string) (string, int) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/rooms/create", map[string]any{
		"game_id":       gameID,
		"host_nickname": host,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create room: expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	code, _ := body["room_code"].(string)
	if code == "" {
		t.Fatalf("create room: missing room_code in %v", body)
	}
	return code, int(body["player_id"].(float64))
}

func joinPlayer(t *testing.T, ts *httptest.Server, code, nickname string) int {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/rooms/join", map[string]any{
		"room_code": code,
		"nickname":  nickname,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("join room: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return int(body["player_id"].(float64))
}

func startGame(t *testing.T, ts *httptest.Server, code string, hostID int) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/rooms/"+code+"/start", map[string]any{
		"player_id": hostID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("start game: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}
