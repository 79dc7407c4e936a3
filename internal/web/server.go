package web

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/charliearlie/football-IQ-sub007/internal/ranking"
	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// Store is the slice of the database the handlers need.
type Store interface {
	GetDayAttempts(day string) ([]types.Attempt, error)
	GetUserDayAttempts(day string, userID string) ([]types.Attempt, error)
	GetProfiles() (map[string]types.Profile, error)
	CountPlayers(day string) (int, error)
}

// Refresher triggers an out-of-band backend sync.
type Refresher interface {
	RefreshNow() bool
}

type Server struct {
	App       *fiber.App
	db        Store
	refresher Refresher
	config    ServerConfig
}

type ServerConfig struct {
	Port       int
	MaxEntries int
}

func InitServer(config ServerConfig, db Store, refresher Refresher) *Server {
	if config.MaxEntries <= 0 {
		config.MaxEntries = 100
	}

	s := &Server{
		App:       fiber.New(),
		db:        db,
		refresher: refresher,
		config:    config,
	}

	s.App.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Accept,Authorization,Content-Type",
		AllowCredentials: false, // credentials require explicit origins
		MaxAge:           300,
	}))

	s.App.Get("/health", s.HandleHealth)
	s.App.Get("/api/leaderboard", s.HandleLeaderboard)
	s.App.Get("/api/leaderboard/me", s.HandleUserRank)
	s.App.Get("/api/leaderboard/visibility", s.HandleVisibility)
	s.App.Get("/api/scores/daily", s.HandleDailyScore)
	s.App.Post("/api/refresh", s.HandleRefresh)

	return s
}

func (s *Server) Listen() error {
	return s.App.Listen(fmt.Sprintf(":%d", s.config.Port))
}

func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) HandleLeaderboard(c *fiber.Ctx) error {
	day := queryDay(c)

	limit := s.config.MaxEntries
	if l, err := strconv.Atoi(c.Query("limit", "")); err == nil && l > 0 && l < limit {
		limit = l
	}

	board, total, err := s.board(day)
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusInternalServerError)
	}

	if len(board) > limit {
		board = board[:limit]
	}

	return c.JSON(fiber.Map{
		"date":          day,
		"entries":       board,
		"total_players": total,
	})
}

func (s *Server) HandleUserRank(c *fiber.Ctx) error {
	userID := c.Query("user", "")
	if len(userID) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "missing user"})
	}
	day := queryDay(c)

	board, total, err := s.board(day)
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusInternalServerError)
	}

	userRank := ranking.FindUserRank(board, userID, total)
	if userRank == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no score for user"})
	}

	return c.JSON(userRank)
}

func (s *Server) HandleVisibility(c *fiber.Ctx) error {
	userID := c.Query("user", "")
	if len(userID) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "missing user"})
	}
	day := queryDay(c)

	start, err := strconv.Atoi(c.Query("start", "0"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid start"})
	}
	end, err := strconv.Atoi(c.Query("end", "0"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid end"})
	}

	board, total, err := s.board(day)
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusInternalServerError)
	}

	userRank := ranking.FindUserRank(board, userID, total)

	// The sticky decision looks at the window the client actually fetched,
	// not the full board.
	window := board
	if len(window) > s.config.MaxEntries {
		window = window[:s.config.MaxEntries]
	}

	result := ranking.StickyVisibility(types.StickyInput{
		CurrentUserID: userID,
		Entries:       window,
		VisibleRange:  types.VisibleRange{Start: start, End: end},
		UserRank:      userRank,
	})

	return c.JSON(result)
}

func (s *Server) HandleDailyScore(c *fiber.Ctx) error {
	userID := c.Query("user", "")
	if len(userID) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "missing user"})
	}
	day := queryDay(c)

	attempts, err := s.db.GetUserDayAttempts(day, userID)
	if err != nil {
		log.Println(err)
		return c.SendStatus(http.StatusInternalServerError)
	}

	return c.JSON(ranking.Aggregate(attempts))
}

func (s *Server) HandleRefresh(c *fiber.Ctx) error {
	if s.refresher == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": "refresh unavailable"})
	}

	refreshed := s.refresher.RefreshNow()

	return c.JSON(fiber.Map{"refreshed": refreshed})
}

func (s *Server) board(day string) ([]types.LeaderboardEntry, int, error) {
	attempts, err := s.db.GetDayAttempts(day)
	if err != nil {
		return nil, 0, err
	}

	profiles, err := s.db.GetProfiles()
	if err != nil {
		return nil, 0, err
	}

	board := ranking.BuildBoard(attempts, profiles)

	total, err := s.db.CountPlayers(day)
	if err != nil {
		return nil, 0, err
	}

	return board, total, nil
}

func queryDay(c *fiber.Ctx) string {
	day := c.Query("date", "")
	if len(day) == 0 {
		return time.Now().UTC().Format("2006-01-02")
	}
	return day
}
