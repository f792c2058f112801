package server

import (
	"net/http"
	"sync"
	"time"

	"do-or-sip/internal/config"
	"do-or-sip/internal/db"

	"gorm.io/gorm"
)

// Catalog is the read-only game/card source the room core draws from.
type Catalog interface {
	ListGames() ([]db.GameSummary, error)
	GetGame(id uint) (*db.Game, error)
	ListCards(gameID uint) ([]db.Card, error)
}

type Server struct {
	store    *Store
	db       *gorm.DB
	catalog  Catalog
	hub      *hub
	cfg      config.Config
	timersMu sync.Mutex
	timers   map[string]*time.Timer
}

func New(conn *gorm.DB, catalog Catalog, cfg config.Config) *Server {
	return &Server{
		store:   NewStore(cfg.RoomCodeAttempts),
		db:      conn,
		catalog: catalog,
		hub:     newHub(time.Duration(cfg.BroadcastWriteTimeoutSeconds) * time.Second),
		cfg:     cfg,
		timers:  make(map[string]*time.Timer),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("GET /api/games/", s.handleGetGame)
	mux.HandleFunc("POST /api/rooms/create", s.handleCreateRoom)
	mux.HandleFunc("POST /api/rooms/join", s.handleJoinRoom)
	mux.HandleFunc("GET /api/rooms/", s.handleRoomSubroutes)
	mux.HandleFunc("POST /api/rooms/", s.handleRoomSubroutes)
	mux.HandleFunc("GET /ws/", s.handleWebsocket)
	mux.Handle("GET /cards/", http.StripPrefix("/cards/", http.FileServer(http.Dir(s.cfg.CardsPath))))
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
