package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/hailam/chessrules/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// MaxUsernameLength is the longest accepted player name, in bytes.
const MaxUsernameLength = 32

// ErrClosed is returned by operations on a closed Storage.
var ErrClosed = errors.New("storage closed")

// UserPreferences stores user settings
type UserPreferences struct {
	Username       string    `json:"username"`
	SoundEnabled   bool      `json:"sound_enabled"`
	Volume         float64   `json:"volume"`
	HighlightMoves bool      `json:"highlight_moves"`
	FlipBoard      bool      `json:"flip_board"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences with a generated
// player name.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:       petname.Generate(2, "-"),
		SoundEnabled:   true,
		Volume:         0.5,
		HighlightMoves: true,
		LastPlayed:     time.Now(),
	}
}

// Validate reports every problem with the preferences at once.
func (p *UserPreferences) Validate() error {
	var result *multierror.Error
	if p.Username == "" {
		result = multierror.Append(result, errors.New("username is empty"))
	}
	if len(p.Username) > MaxUsernameLength {
		result = multierror.Append(result, fmt.Errorf("username %q is longer than %d characters", p.Username, MaxUsernameLength))
	}
	if p.Volume < 0 || p.Volume > 1 {
		result = multierror.Append(result, fmt.Errorf("volume %.2f is outside [0, 1]", p.Volume))
	}
	return result.ErrorOrNil()
}

// GameStats stores game statistics
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	Stalemates    int           `json:"stalemates"`
	LongestGame   int           `json:"longest_game"` // in half-moves
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{}
}

// GameResult represents the result of a finished game. Winner is NoSide for
// a stalemate.
type GameResult struct {
	Winner   board.Side
	Plies    int
	Duration time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	return Open("")
}

// Open opens the database under dir, or under the platform data directory
// when dir is empty.
func Open(dir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", dbDir)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return errors.Wrap(err, "close database")
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	found, err := s.get(keyFirstLaunch, nil)
	return !found, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
	return errors.Wrap(err, "mark first launch")
}

// SavePreferences validates and saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	if err := prefs.Validate(); err != nil {
		return errors.Wrap(err, "invalid preferences")
	}
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	_, err := s.get(keyStats, stats)
	return stats, err
}

// RecordGame records a finished game and updates statistics
func (s *Storage) RecordGame(result GameResult) (*GameStats, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}

	stats.Record(result)

	if err := s.SaveStats(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Record adds a finished game to the statistics.
func (s *GameStats) Record(result GameResult) {
	s.GamesPlayed++
	s.TotalPlayTime += result.Duration

	switch result.Winner {
	case board.White:
		s.WhiteWins++
	case board.Black:
		s.BlackWins++
	default:
		s.Stalemates++
	}

	if result.Plies > s.LongestGame {
		s.LongestGame = result.Plies
	}
}

// WinRate returns the share of decided games won by side as a percentage
// (0-100).
func (s *GameStats) WinRate(side board.Side) float64 {
	decided := s.WhiteWins + s.BlackWins
	if decided == 0 {
		return 0
	}
	wins := s.WhiteWins
	if side == board.Black {
		wins = s.BlackWins
	}
	return float64(wins) / float64(decided) * 100
}

func (s *Storage) put(key string, v interface{}) error {
	if s.db == nil {
		return ErrClosed
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	return errors.Wrapf(err, "save %s", key)
}

// get decodes the value stored under key into v, which may be nil. It
// reports whether the key exists.
func (s *Storage) get(key string, v interface{}) (bool, error) {
	if s.db == nil {
		return false, ErrClosed
	}
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		if v == nil {
			return nil
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, errors.Wrapf(err, "load %s", key)
}
