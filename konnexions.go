// Konnexions
//
// A word-grouping puzzle played together: sixteen words hide four
// categories of four, and the room has four strikes to find them all.
//
// Features:
// - WebSockets per room ID: /path/:roomid and /path/:roomid/ws
// - First player to join a room becomes host
// - Players identified by a stable id they present on join (cookie-backed)
// - Disconnected players get a reconnect grace window before they are
//   announced as gone; their roster entry survives for late rejoins
// - Co-op mode: every connected player must agree on the same four
//   words before a guess counts
// - Competitive mode: players are split into 2-4 teams, each racing an
//   independently generated puzzle
// - Live selection sharing, so everyone sees what everyone else has picked
// - Rooms auto-reaped after a configurable idle timeout
// - Random 8-char room IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current room, backed by go-qrcode

package main

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	maxStrikes  = 4
	solveTarget = 4
)

type GameMode string

const (
	ModeCoop        GameMode = "coop"
	ModeCompetitive GameMode = "competitive"
)

type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusReconnecting ConnectionStatus = "reconnecting"
	StatusDisconnected ConnectionStatus = "disconnected"
)

// Player colors, assigned in join order and cycled when exhausted.
var playerColors = []string{
	"#ff6b6b", // coral red
	"#4ecdc4", // teal
	"#ffe66d", // yellow
	"#a8e6cf", // mint
	"#dda0dd", // plum
	"#98d8c8", // seafoam
	"#f7dc6f", // gold
	"#bb8fce", // lavender
}

var teamColors = []struct {
	name  string
	color string
}{
	{"Red", "#ff6b6b"},
	{"Blue", "#4ecdc4"},
	{"Yellow", "#ffe66d"},
	{"Purple", "#bb8fce"},
}

// Player is a roster entry. Entries are never deleted; players who miss
// the reconnect grace window are marked disconnected and may rejoin later.
type Player struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Color            string           `json:"color"`
	ConnectionStatus ConnectionStatus `json:"connectionStatus"`
	SelectedWords    []string         `json:"selectedWords"`
	TeamID           string           `json:"teamId,omitempty"`
	LastSeen         int64            `json:"lastSeen"`
}

// Team exists only in competitive mode. Each team holds its own puzzle
// and races the others to solve it.
type Team struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Color            string   `json:"color"`
	PlayerIDs        []string `json:"playerIds"`
	SolvedCategories []string `json:"solvedCategories"`
	Strikes          int      `json:"strikes"`
	PuzzleID         string   `json:"puzzleId"`
	FinishedAt       int64    `json:"finishedAt,omitempty"`

	puzzle *Puzzle
	words  []string
	solved []Category
}

// RoomState is the full snapshot sent in roomState messages.
type RoomState struct {
	RoomID           string             `json:"roomId"`
	Mode             GameMode           `json:"mode"`
	HostID           string             `json:"hostId"`
	Players          map[string]*Player `json:"players"`
	Teams            map[string]*Team   `json:"teams"`
	PuzzleID         string             `json:"puzzleId"`
	GameStarted      bool               `json:"gameStarted"`
	SolvedCategories []string           `json:"solvedCategories"`
	Strikes          int                `json:"strikes"`
	WinnerID         string             `json:"winnerId,omitempty"`
}

// Messages coming from clients
type ClientMessage struct {
	Type      string   `json:"type"`                // "join", "select", "submit", "startGame", "newGame", "ping"
	PlayerID  string   `json:"playerId,omitempty"`  // join
	Username  string   `json:"username,omitempty"`  // join
	Words     []string `json:"words,omitempty"`     // select
	Mode      GameMode `json:"mode,omitempty"`      // startGame
	TeamCount int      `json:"teamCount,omitempty"` // startGame
}

// Messages sent to clients

type PuzzleView struct {
	ID    string   `json:"id"`
	Words []string `json:"words"`
}

type RoomStateMessage struct {
	Type   string     `json:"type"` // "roomState"
	State  *RoomState `json:"state"`
	Puzzle PuzzleView `json:"puzzle"`
}

type PlayerJoinedMessage struct {
	Type   string  `json:"type"` // "playerJoined"
	Player *Player `json:"player"`
}

type PlayerReconnectedMessage struct {
	Type   string  `json:"type"` // "playerReconnected"
	Player *Player `json:"player"`
}

type PlayerReconnectingMessage struct {
	Type     string `json:"type"` // "playerReconnecting"
	PlayerID string `json:"playerId"`
}

type PlayerLeftMessage struct {
	Type     string `json:"type"` // "playerLeft"
	PlayerID string `json:"playerId"`
}

type PlayerSelectedMessage struct {
	Type     string   `json:"type"` // "playerSelected"
	PlayerID string   `json:"playerId"`
	Words    []string `json:"words"`
}

type GuessResultMessage struct {
	Type      string    `json:"type"` // "guessResult"
	Correct   bool      `json:"correct"`
	Category  *Category `json:"category,omitempty"`
	IsOneAway bool      `json:"isOneAway,omitempty"`
	Strikes   int       `json:"strikes"`
}

type GameOverMessage struct {
	Type       string     `json:"type"` // "gameOver"
	Won        bool       `json:"won"`
	Categories []Category `json:"categories"`
}

type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

type PongMessage struct {
	Type string `json:"type"` // "pong"
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string // bound on join, guarded by the hub mutex
}

type inbound struct {
	client *Client
	msg    ClientMessage
}

// Hub is the authoritative per-room session. All room state is mutated
// under mu, and inbound messages flow through a single channel so each
// one is handled fully before the next.
type Hub struct {
	id       string
	provider PuzzleProvider

	clients map[*Client]bool
	conns   map[string]*Client // player id -> active connection

	register chan *Client
	unreg    chan *Client
	inbound  chan inbound

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time

	hostID      string
	mode        GameMode
	gameStarted bool
	winnerID    string

	players map[string]*Player
	teams   map[string]*Team

	// coop-mode puzzle state; competitive state lives on each Team
	puzzle  *Puzzle
	words   []string
	solved  []Category
	strikes int

	// explicit grace-timer handles keyed by player id, so reconnects
	// can cancel them and a late firing can be proven a no-op
	graceTimers map[string]*time.Timer
}

func newHub(roomID string, provider PuzzleProvider) *Hub {
	now := time.Now()
	return &Hub{
		id:          roomID,
		provider:    provider,
		clients:     make(map[*Client]bool),
		conns:       make(map[string]*Client),
		register:    make(chan *Client),
		unreg:       make(chan *Client),
		inbound:     make(chan inbound),
		createdAt:   now,
		lastActive:  now,
		mode:        ModeCoop,
		players:     make(map[string]*Player),
		teams:       make(map[string]*Team),
		graceTimers: make(map[string]*time.Timer),
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.handleRegister(c)

		case c := <-h.unreg:
			h.handleUnregister(cfg, c)

		case in := <-h.inbound:
			switch in.msg.Type {
			case "join":
				h.handleJoin(cfg, in.client, in.msg)
			case "select":
				h.handleSelect(in.client, in.msg.Words)
			case "submit":
				h.handleSubmit(cfg, in.client)
			case "startGame":
				h.handleStartGame(cfg, in.client, in.msg.Mode, in.msg.TeamCount)
			case "newGame":
				h.handleNewGame(cfg, in.client)
			case "ping":
				h.handlePing(in.client)
			default:
				// ignore unknown types
			}
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	// Nothing is sent until the client identifies itself with a join.
	h.clients[c] = true
}

func (h *Hub) handleUnregister(cfg *Config, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}

	pid := c.playerID
	if pid == "" {
		// Closed before ever joining.
		return
	}

	if h.conns[pid] != c {
		// A newer connection for this player already took over.
		return
	}
	delete(h.conns, pid)

	player := h.players[pid]
	if player == nil {
		return
	}

	player.ConnectionStatus = StatusReconnecting
	h.broadcastLocked(PlayerReconnectingMessage{
		Type:     "playerReconnecting",
		PlayerID: pid,
	}, nil)

	logf(cfg, "ROOMS: Player %q disconnected from %s, grace period started", player.Username, h.id)

	h.graceTimers[pid] = time.AfterFunc(cfg.reconnectGrace, func() {
		h.gracePeriodExpired(cfg, pid)
	})
}

// gracePeriodExpired runs on the timer goroutine. A player who
// reconnected in time is no longer reconnecting, which makes a late
// firing a no-op.
func (h *Hub) gracePeriodExpired(cfg *Config, pid string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.graceTimers, pid)

	player := h.players[pid]
	if player == nil || player.ConnectionStatus != StatusReconnecting {
		return
	}

	player.ConnectionStatus = StatusDisconnected
	h.broadcastLocked(PlayerLeftMessage{
		Type:     "playerLeft",
		PlayerID: pid,
	}, nil)

	logf(cfg, "ROOMS: Player %q left %s", player.Username, h.id)
}

func (h *Hub) handleJoin(cfg *Config, c *Client, msg ClientMessage) {
	pid := msg.PlayerID
	if pid == "" || msg.Username == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	// A pending grace timer for this player is now moot.
	if t, ok := h.graceTimers[pid]; ok {
		t.Stop()
		delete(h.graceTimers, pid)
	}

	// Most recent join wins the connection binding; the displaced
	// connection is closed outright.
	if old := h.conns[pid]; old != nil && old != c {
		if _, ok := h.clients[old]; ok {
			delete(h.clients, old)
			close(old.send)
		}
	}
	c.playerID = pid
	h.conns[pid] = c

	if existing := h.players[pid]; existing != nil {
		existing.ConnectionStatus = StatusConnected
		existing.Username = msg.Username
		existing.LastSeen = time.Now().UnixMilli()

		logf(cfg, "ROOMS: Player %q reconnected to %s", msg.Username, h.id)

		h.sendRoomStateLocked(c)
		h.broadcastLocked(PlayerReconnectedMessage{
			Type:   "playerReconnected",
			Player: copyPlayer(existing),
		}, c)
		return
	}

	player := &Player{
		ID:               pid,
		Username:         msg.Username,
		Color:            playerColors[len(h.players)%len(playerColors)],
		ConnectionStatus: StatusConnected,
		SelectedWords:    []string{},
		LastSeen:         time.Now().UnixMilli(),
	}
	h.players[pid] = player

	// First player ever to join stays host for the room's lifetime.
	if h.hostID == "" {
		h.hostID = pid
	}

	logf(cfg, "ROOMS: Player %q joined %s (host: %t)", msg.Username, h.id, h.hostID == pid)

	h.sendRoomStateLocked(c)
	h.broadcastLocked(PlayerJoinedMessage{
		Type:   "playerJoined",
		Player: copyPlayer(player),
	}, c)
}

func (h *Hub) handleSelect(c *Client, words []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	player := h.playerForLocked(c)
	if player == nil {
		return
	}

	player.SelectedWords = append([]string(nil), words...)
	player.LastSeen = time.Now().UnixMilli()

	msg := PlayerSelectedMessage{
		Type:     "playerSelected",
		PlayerID: player.ID,
		Words:    append([]string(nil), words...),
	}

	// Ghost selections stay within the team once a competitive game is
	// underway; everywhere else the whole room sees them.
	if h.mode == ModeCompetitive && h.gameStarted && player.TeamID != "" {
		if team := h.teams[player.TeamID]; team != nil {
			h.broadcastTeamLocked(team, msg)
			return
		}
	}

	h.broadcastLocked(msg, nil)
}

func (h *Hub) handleSubmit(cfg *Config, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	player := h.playerForLocked(c)
	if player == nil || len(player.SelectedWords) != 4 || !distinctWords(player.SelectedWords) {
		return
	}

	if !h.gameStarted {
		return
	}

	if h.mode == ModeCompetitive {
		h.submitForTeamLocked(cfg, c, player)
		return
	}

	if h.puzzle == nil || h.coopFinishedLocked() {
		return
	}

	// Co-op consensus gate: every connected player must hold the same
	// four words, compared as sets. A mismatch is not a strike.
	submission := selectionKey(player.SelectedWords)
	for _, p := range h.players {
		if p.ConnectionStatus != StatusConnected {
			continue
		}
		if selectionKey(p.SelectedWords) != submission {
			logf(cfg, "ROOMS: Submit rejected in %s, consensus not reached", h.id)
			h.sendLocked(c, ErrorMessage{
				Type:    "error",
				Message: "All players must select the same 4 words",
			})
			return
		}
	}

	verdict := evaluateGuess(h.puzzle, h.solved, player.SelectedWords)

	if verdict.category != nil {
		category := *verdict.category
		h.solved = append(h.solved, category)
		h.words = removeWords(h.words, category.Words)

		// A fresh round of consensus starts from nothing.
		for _, p := range h.players {
			p.SelectedWords = []string{}
		}

		logf(cfg, "ROOMS: Category solved in %s: %q", h.id, category.Theme)

		h.broadcastLocked(GuessResultMessage{
			Type:     "guessResult",
			Correct:  true,
			Category: copyCategory(category),
			Strikes:  h.strikes,
		}, nil)

		if len(h.solved) == solveTarget {
			h.winnerID = "coop"
			h.broadcastLocked(GameOverMessage{
				Type:       "gameOver",
				Won:        true,
				Categories: copyCategories(h.puzzle.Categories),
			}, nil)
		}
		return
	}

	h.strikes++

	logf(cfg, "ROOMS: Wrong guess in %s (strikes: %d, one away: %t)", h.id, h.strikes, verdict.oneAway)

	h.broadcastLocked(GuessResultMessage{
		Type:      "guessResult",
		Correct:   false,
		IsOneAway: verdict.oneAway,
		Strikes:   h.strikes,
	}, nil)

	if h.strikes >= maxStrikes {
		h.broadcastLocked(GameOverMessage{
			Type:       "gameOver",
			Won:        false,
			Categories: copyCategories(h.puzzle.Categories),
		}, nil)
	}
}

// submitForTeamLocked is the competitive-mode guess path: evaluation
// and scoring run against the submitting player's team, and results
// stay within that team.
func (h *Hub) submitForTeamLocked(cfg *Config, c *Client, player *Player) {
	team := h.teams[player.TeamID]
	if team == nil || team.puzzle == nil {
		return
	}

	if team.FinishedAt != 0 || team.Strikes >= maxStrikes {
		return
	}

	verdict := evaluateGuess(team.puzzle, team.solved, player.SelectedWords)

	if verdict.category != nil {
		category := *verdict.category
		team.solved = append(team.solved, category)
		team.SolvedCategories = append(team.SolvedCategories, category.Theme)
		team.words = removeWords(team.words, category.Words)

		for _, pid := range team.PlayerIDs {
			if p := h.players[pid]; p != nil {
				p.SelectedWords = []string{}
			}
		}

		logf(cfg, "ROOMS: Category solved by %s in %s: %q", team.ID, h.id, category.Theme)

		h.broadcastTeamLocked(team, GuessResultMessage{
			Type:     "guessResult",
			Correct:  true,
			Category: copyCategory(category),
			Strikes:  team.Strikes,
		})

		if len(team.solved) == solveTarget {
			team.FinishedAt = time.Now().UnixMilli()
			if h.winnerID == "" {
				h.winnerID = team.ID
			}
			h.broadcastTeamLocked(team, GameOverMessage{
				Type:       "gameOver",
				Won:        true,
				Categories: copyCategories(team.puzzle.Categories),
			})
		}
		return
	}

	team.Strikes++

	logf(cfg, "ROOMS: Wrong guess by %s in %s (strikes: %d)", team.ID, h.id, team.Strikes)

	h.broadcastTeamLocked(team, GuessResultMessage{
		Type:      "guessResult",
		Correct:   false,
		IsOneAway: verdict.oneAway,
		Strikes:   team.Strikes,
	})

	if team.Strikes >= maxStrikes {
		h.broadcastTeamLocked(team, GameOverMessage{
			Type:       "gameOver",
			Won:        false,
			Categories: copyCategories(team.puzzle.Categories),
		})
	}
}

func (h *Hub) handleStartGame(cfg *Config, c *Client, mode GameMode, teamCount int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	player := h.playerForLocked(c)
	if player == nil {
		return
	}

	// Only the host may start; everyone else is ignored.
	if player.ID != h.hostID {
		logf(cfg, "ROOMS: Non-host %q tried to start game in %s", player.Username, h.id)
		return
	}

	if mode != ModeCoop && mode != ModeCompetitive {
		return
	}

	connected := h.connectedPlayersLocked()

	if mode == ModeCompetitive {
		if teamCount < 2 || teamCount > 4 || len(connected) < teamCount {
			return
		}
	}

	// Generate every puzzle before touching room state, so a provider
	// failure leaves the lobby untouched.
	var roomPuzzle *Puzzle
	var teamPuzzles []*Puzzle

	if mode == ModeCoop {
		pz, err := h.provider.GeneratePuzzle()
		if err != nil {
			logf(cfg, "ROOMS: Puzzle generation failed in %s: %v", h.id, err)
			h.sendLocked(c, ErrorMessage{
				Type:    "error",
				Message: "Failed to generate a puzzle, please try again",
			})
			return
		}
		roomPuzzle = pz
	} else {
		for i := 0; i < teamCount; i++ {
			pz, err := h.provider.GeneratePuzzle()
			if err != nil {
				logf(cfg, "ROOMS: Puzzle generation failed in %s: %v", h.id, err)
				h.sendLocked(c, ErrorMessage{
					Type:    "error",
					Message: "Failed to generate a puzzle, please try again",
				})
				return
			}
			teamPuzzles = append(teamPuzzles, pz)
		}
	}

	h.mode = mode
	h.gameStarted = true
	h.winnerID = ""
	h.solved = nil
	h.strikes = 0
	h.teams = make(map[string]*Team)
	h.puzzle = nil
	h.words = nil

	for _, p := range h.players {
		p.SelectedWords = []string{}
		p.TeamID = ""
	}

	if mode == ModeCoop {
		h.puzzle = roomPuzzle
		h.words = roomPuzzle.shuffledWords()
	} else {
		for i := 0; i < teamCount; i++ {
			team := &Team{
				ID:               fmt.Sprintf("team-%d", i),
				Name:             teamColors[i].name,
				Color:            teamColors[i].color,
				PlayerIDs:        []string{},
				SolvedCategories: []string{},
				PuzzleID:         teamPuzzles[i].ID,
				puzzle:           teamPuzzles[i],
				words:            teamPuzzles[i].shuffledWords(),
			}
			h.teams[team.ID] = team
		}

		// Random round-robin keeps the teams as even as possible.
		for i, p := range shuffled(connected) {
			team := h.teams[fmt.Sprintf("team-%d", i%teamCount)]
			p.TeamID = team.ID
			team.PlayerIDs = append(team.PlayerIDs, p.ID)
		}
	}

	logf(cfg, "ROOMS: Game started in %s (mode: %s, teams: %d)", h.id, mode, teamCount)

	h.broadcastRoomStateLocked()
}

func (h *Hub) handleNewGame(cfg *Config, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	player := h.playerForLocked(c)
	if player == nil {
		return
	}

	if player.ID != h.hostID {
		logf(cfg, "ROOMS: Non-host %q tried to reset game in %s", player.Username, h.id)
		return
	}

	h.gameStarted = false
	h.winnerID = ""
	h.solved = nil
	h.strikes = 0
	h.teams = make(map[string]*Team)
	h.puzzle = nil
	h.words = nil

	for _, p := range h.players {
		p.SelectedWords = []string{}
		p.TeamID = ""
	}

	logf(cfg, "ROOMS: Room %s reset to lobby", h.id)

	h.broadcastRoomStateLocked()
}

func (h *Hub) handlePing(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()
	h.sendLocked(c, PongMessage{Type: "pong"})
}

// playerForLocked resolves a client to its player, ignoring stale
// connections that lost their binding to a newer join.
func (h *Hub) playerForLocked(c *Client) *Player {
	if c.playerID == "" || h.conns[c.playerID] != c {
		return nil
	}
	return h.players[c.playerID]
}

func (h *Hub) connectedPlayersLocked() []*Player {
	connected := make([]*Player, 0, len(h.players))
	for _, p := range h.players {
		if p.ConnectionStatus == StatusConnected {
			connected = append(connected, p)
		}
	}
	return connected
}

func (h *Hub) coopFinishedLocked() bool {
	return h.winnerID != "" || h.strikes >= maxStrikes || len(h.solved) == solveTarget
}

// snapshotLocked deep-copies the room state, so the writer goroutines
// can marshal it after the lock is released.
func (h *Hub) snapshotLocked() *RoomState {
	players := make(map[string]*Player, len(h.players))
	for id, p := range h.players {
		players[id] = copyPlayer(p)
	}

	teams := make(map[string]*Team, len(h.teams))
	for id, t := range h.teams {
		teams[id] = &Team{
			ID:               t.ID,
			Name:             t.Name,
			Color:            t.Color,
			PlayerIDs:        append([]string(nil), t.PlayerIDs...),
			SolvedCategories: append([]string(nil), t.SolvedCategories...),
			Strikes:          t.Strikes,
			PuzzleID:         t.PuzzleID,
			FinishedAt:       t.FinishedAt,
		}
	}

	solved := make([]string, 0, len(h.solved))
	for _, c := range h.solved {
		solved = append(solved, c.Theme)
	}

	puzzleID := ""
	if h.puzzle != nil {
		puzzleID = h.puzzle.ID
	}

	return &RoomState{
		RoomID:           h.id,
		Mode:             h.mode,
		HostID:           h.hostID,
		Players:          players,
		Teams:            teams,
		PuzzleID:         puzzleID,
		GameStarted:      h.gameStarted,
		SolvedCategories: solved,
		Strikes:          h.strikes,
		WinnerID:         h.winnerID,
	}
}

// puzzleViewForLocked picks the word pool the recipient is allowed to
// see: the room puzzle in co-op, their own team's in competitive.
func (h *Hub) puzzleViewForLocked(c *Client) PuzzleView {
	if h.mode == ModeCompetitive {
		if p := h.players[c.playerID]; p != nil && p.TeamID != "" {
			if team := h.teams[p.TeamID]; team != nil && team.puzzle != nil {
				return PuzzleView{
					ID:    team.puzzle.ID,
					Words: append([]string(nil), team.words...),
				}
			}
		}
		return PuzzleView{Words: []string{}}
	}

	if h.puzzle == nil {
		return PuzzleView{Words: []string{}}
	}

	return PuzzleView{
		ID:    h.puzzle.ID,
		Words: append([]string(nil), h.words...),
	}
}

func (h *Hub) sendRoomStateLocked(c *Client) {
	h.sendLocked(c, RoomStateMessage{
		Type:   "roomState",
		State:  h.snapshotLocked(),
		Puzzle: h.puzzleViewForLocked(c),
	})
}

func (h *Hub) broadcastRoomStateLocked() {
	for client := range h.clients {
		h.sendRoomStateLocked(client)
	}
}

func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcastLocked(msg any, exclude *Client) {
	for client := range h.clients {
		if client == exclude {
			continue
		}
		h.sendLocked(client, msg)
	}
}

func (h *Hub) broadcastTeamLocked(team *Team, msg any) {
	members := make(map[string]bool, len(team.PlayerIDs))
	for _, pid := range team.PlayerIDs {
		members[pid] = true
	}

	for client := range h.clients {
		if client.playerID != "" && members[client.playerID] {
			h.sendLocked(client, msg)
		}
	}
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, t := range h.graceTimers {
		t.Stop()
	}
	h.graceTimers = make(map[string]*time.Timer)

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

type guessVerdict struct {
	category *Category
	oneAway  bool
}

// evaluateGuess scans puzzle categories in definition order, skipping
// already-solved themes. Four shared words is an exact match; three is
// a near miss, which ends the scan since valid puzzles cannot have two
// categories sharing three words with one four-word guess. Callers must
// pass a selection of exactly four unsolved words.
func evaluateGuess(puzzle *Puzzle, solved []Category, selection []string) guessVerdict {
	for i := range puzzle.Categories {
		category := &puzzle.Categories[i]

		if themeSolved(solved, category.Theme) {
			continue
		}

		matches := 0
		for _, w := range selection {
			for _, cw := range category.Words {
				if w == cw {
					matches++
					break
				}
			}
		}

		if matches == 4 {
			return guessVerdict{category: category}
		}
		if matches == 3 {
			return guessVerdict{oneAway: true}
		}
	}

	return guessVerdict{}
}

func themeSolved(solved []Category, theme string) bool {
	for _, c := range solved {
		if c.Theme == theme {
			return true
		}
	}
	return false
}

// distinctWords reports whether no word in the selection repeats. The
// evaluator assumes a set of four, so padded selections are rejected
// before they reach it.
func distinctWords(words []string) bool {
	for i, w := range words {
		for _, prev := range words[:i] {
			if w == prev {
				return false
			}
		}
	}
	return true
}

// selectionKey normalizes a selection for order-independent comparison.
func selectionKey(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x00")
}

func removeWords(pool []string, words []string) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		keep := true
		for _, rm := range words {
			if w == rm {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, w)
		}
	}
	return out
}

func copyPlayer(p *Player) *Player {
	cp := *p
	cp.SelectedWords = append([]string(nil), p.SelectedWords...)
	return &cp
}

func copyCategory(c Category) *Category {
	cp := c
	cp.Words = append([]string(nil), c.Words...)
	return &cp
}

func copyCategories(categories []Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, *copyCategory(c))
	}
	return out
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "konnexions_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	// Readable by the client script, which presents it as its stable
	// player id in join messages.
	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// RoomManager holds a set of hubs keyed by room ID, so each $path/$roomid
// is its own isolated session.
type RoomManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	provider    PuzzleProvider
	idleTimeout time.Duration
}

func newRoomManager(provider PuzzleProvider, idleTimeout time.Duration) *RoomManager {
	rm := &RoomManager{
		hubs:        make(map[string]*Hub),
		provider:    provider,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go rm.reaperLoop()
	}
	return rm
}

func (rm *RoomManager) getHub(cfg *Config, roomID string) *Hub {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if hub, ok := rm.hubs[roomID]; ok {
		return hub
	}

	hub := newHub(roomID, rm.provider)
	rm.hubs[roomID] = hub
	go hub.run(cfg)
	return hub
}

// newRoomID generates a crypto-random room ID and ensures it doesn't
// collide with existing rooms.
func (rm *RoomManager) newRoomID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		rm.mu.Lock()
		_, exists := rm.hubs[id]
		rm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than
// idleTimeout.
func (rm *RoomManager) reaperLoop() {
	ticker := time.NewTicker(rm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-rm.idleTimeout)

		rm.mu.Lock()
		for id, hub := range rm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(rm.hubs, id)
				go hub.closeAll()
			}
		}
		rm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :roomid
func serveWSForManager(cfg *Config, rm *RoomManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roomID := ps.ByName("roomid")
		if roomID == "" {
			http.Error(w, "missing room id", http.StatusBadRequest)
			return
		}

		hub := rm.getHub(cfg, roomID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 8),
		}

		hub.register <- client

		go client.writePump()
		client.readPump(cfg, hub)
	}
}

func (c *Client) readPump(cfg *Config, h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// Malformed payloads are dropped; the sender hears nothing.
			logf(cfg, "ROOMS: Dropping malformed message in %s: %v", h.id, err)
			continue
		}

		h.inbound <- inbound{
			client: c,
			msg:    msg,
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current room URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID := ps.ByName("roomid")
	if roomID == "" {
		http.Error(w, "missing room id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:roomid/qr; strip trailing "/qr" to get the room URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// ---- Static file paths ----

//go:embed konnexions/index.html
var indexHTML []byte

//go:embed konnexions/app.css
var konnexionsCSS []byte

//go:embed konnexions/app.js
var konnexionsJS []byte

func getIndexHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

func getCssHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(konnexionsCSS)
	}
}

func getJsHandler(cfg *Config) func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(konnexionsJS)
	}
}

// redirectNewRoom handles GET /path by generating a new random room ID
// (with server-side collision detection) and redirecting to /path/:roomid.
func redirectNewRoom(cfg *Config, path string, rm *RoomManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		roomID := rm.newRoomID()
		logf(cfg, "ROOMS: Created room %s/%s", path, roomID)
		http.Redirect(w, r, cfg.prefix+path+"/"+roomID, http.StatusTemporaryRedirect)
	}
}

// registerKonnexionsGame sets up routes so that:
//   - $path                  → redirects to new random room (8-char ID)
//   - $path/:roomid          → HTML client
//   - $path/:roomid/ws       → WebSocket for that room
//   - $path/:roomid/qr       → PNG QR code for that room URL
func registerKonnexionsGame(cfg *Config, path string, mux *httprouter.Router) {
	rm := newRoomManager(newCuratedProvider(), cfg.sessionTimeout)

	// Root path → redirect to new random room
	mux.GET(cfg.prefix+path, redirectNewRoom(cfg, path, rm))

	// Per-room client view (HTML)
	mux.GET(cfg.prefix+path+"/:roomid", getIndexHandler(cfg))

	// Shared assets (no roomid in route)
	mux.GET(cfg.prefix+"/assets/konnexions/app.css", getCssHandler(cfg))
	mux.GET(cfg.prefix+"/assets/konnexions/app.js", getJsHandler(cfg))

	// Per-room websocket
	mux.GET(cfg.prefix+path+"/:roomid/ws", serveWSForManager(cfg, rm))

	// Per-room QR code
	mux.GET(cfg.prefix+path+"/:roomid/qr", qrHandler)
}
