package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/rules"
	"github.com/hailam/chessrules/internal/storage"
)

// Layout. The board sits between two capture rows, the panel to its right.
const (
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardTop + BoardSize + CaptureRowH
	BoardSize    = 640
	SquareSize   = BoardSize / board.Width
	PanelWidth   = 320
	CaptureRowH  = 40
	BoardTop     = CaptureRowH
)

// Config configures the windowed game.
type Config struct {
	// DataDir holds the preferences database. Empty means the platform
	// data directory.
	DataDir string
	// NoStorage disables preferences and statistics.
	NoStorage bool
	// Mute starts with sound off regardless of preferences.
	Mute   bool
	Logger *log.Logger
}

// Game implements ebiten.Game for a two-player board.
type Game struct {
	engine  *game.Game
	moveNum int
	started time.Time

	gameOver bool
	result   string

	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.GameStats
	logger  *log.Logger

	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager
	feedback *FeedbackManager
	panel    *Panel
	settings *SettingsModal
	welcome  *WelcomeScreen
	picker   *PromotionPicker
}

// NewGame creates the game, loading preferences and statistics when
// storage is available.
func NewGame(cfg Config) *Game {
	g := &Game{
		logger:   cfg.Logger,
		renderer: NewRenderer(BoardSize, SquareSize, BoardTop),
		input:    NewInputHandler(),
		audio:    NewAudioManager(),
		settings: NewSettingsModal(),
		welcome:  NewWelcomeScreen(),
		picker:   NewPromotionPicker(),
		prefs:    storage.DefaultPreferences(),
		stats:    storage.NewGameStats(),
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
	g.feedback = NewFeedbackManager(g.audio)
	g.panel = NewPanel(g)

	if !cfg.NoStorage {
		var err error
		g.storage, err = storage.Open(cfg.DataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		}
	}
	g.loadPreferences()
	if cfg.Mute {
		g.audio.SetEnabled(false)
	}
	g.checkFirstLaunch()

	g.NewGameAction()
	return g
}

func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.applyPreferences()
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
	} else {
		g.prefs = prefs
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load statistics: %v", err)
	} else {
		g.stats = stats
	}
	g.applyPreferences()
}

func (g *Game) applyPreferences() {
	g.audio.SetEnabled(g.prefs.SoundEnabled)
	g.audio.SetVolume(g.prefs.Volume)
	g.renderer.SetFlipped(g.prefs.FlipBoard)
}

// savePreferences validates and persists prefs, then applies them.
func (g *Game) savePreferences(prefs storage.UserPreferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	*g.prefs = prefs
	g.applyPreferences()
	if g.storage == nil {
		return nil
	}
	return g.storage.SavePreferences(g.prefs)
}

func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}
	first, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !first {
		return
	}
	g.welcome.Show(g.prefs.Username, func(name string) {
		prefs := *g.prefs
		prefs.Username = name
		if err := g.savePreferences(prefs); err != nil {
			g.feedback.OnError(err.Error())
			log.Printf("Warning: Failed to save preferences: %v", err)
		}
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: Failed to mark first launch complete: %v", err)
		}
	})
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	switch {
	case g.welcome.Update(g.input):
	case g.settings.Update(g.input):
	case g.picker.Update(g.input):
	case g.panel.HandleInput(g.input):
	default:
		g.handleKeys()
		g.handleBoardInput()
	}

	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyF):
		g.FlipAction()
	case IsKeyJustPressed(ebiten.KeyM):
		g.audio.SetEnabled(!g.audio.IsEnabled())
	}
}

func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	sq := g.renderer.ScreenToSquare(g.input.MousePosition())
	if sq == board.NoSquare {
		return
	}
	g.clickSquare(sq)
}

// clickSquare forwards a board click to the engine. Clicking another piece
// of the side to move while one is selected switches the selection.
func (g *Game) clickSquare(sq board.Square) {
	if g.gameOver {
		return
	}

	from := g.engine.Selected()
	state := g.engine.SelectOrMove(sq, g.moveNum)
	if state != rules.NoTurn {
		g.afterMove(state)
		return
	}
	if from == board.NoSquare || from == sq {
		return
	}
	if g.engine.PieceAt(sq).IsOnSide(g.SideToMove()) {
		g.engine.SelectOrMove(sq, g.moveNum)
		return
	}
	g.feedback.OnInvalidMove(from, sq)
}

func (g *Game) afterMove(state rules.GameState) {
	g.moveNum++
	if g.engine.IsPromotionPending() {
		g.picker.Show(g.engine.PromotionSide(), g.choosePromotion)
		return
	}
	g.checkGameEnd(state)
}

func (g *Game) choosePromotion(k board.Kind) {
	state, err := g.engine.ChoosePromotion(k)
	if err != nil {
		g.feedback.OnError(err.Error())
		return
	}
	g.checkGameEnd(state)
}

// checkGameEnd records a finished game. The side that just moved wins a
// checkmate.
func (g *Game) checkGameEnd(state rules.GameState) {
	if !state.IsTerminal() {
		return
	}
	g.gameOver = true

	winner := board.NoSide
	if state == rules.Checkmate {
		winner = game.SideToMove(g.moveNum - 1)
		g.result = fmt.Sprintf("Checkmate, %s wins", winner)
	} else {
		g.result = "Stalemate"
	}
	g.logger.Printf("[GAME] %s after %d plies", g.result, g.moveNum)

	result := storage.GameResult{Winner: winner, Plies: g.moveNum, Duration: time.Since(g.started)}
	if g.storage == nil {
		g.stats.Record(result)
		return
	}
	stats, err := g.storage.RecordGame(result)
	if err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		g.stats.Record(result)
		return
	}
	g.stats = stats
}

// Draw renders the board, panel and any open modal.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	if side := g.SideToMove(); g.engine.InCheck(side) {
		g.renderer.DrawCheck(screen, g.engine.KingSquare(side))
	}
	g.renderer.DrawHighlights(screen, g.engine, g.prefs.HighlightMoves)
	g.renderer.DrawPieces(screen, g.engine, g.feedback.Animations())

	// Each side's captures sit on the row nearest its opponent.
	top, bottom := board.White, board.Black
	if g.renderer.Flipped() {
		top, bottom = bottom, top
	}
	g.renderer.DrawCaptureRow(screen, top, g.engine.Captures(top), g.engine.Score(top), 0, CaptureRowH)
	g.renderer.DrawCaptureRow(screen, bottom, g.engine.Captures(bottom), g.engine.Score(bottom), BoardTop+BoardSize, CaptureRowH)

	g.feedback.Draw(screen)
	g.panel.Draw(screen)

	g.picker.Draw(screen, g.renderer.Sprites())
	g.settings.Draw(screen)
	g.welcome.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// NewGameAction resets the board to the starting position.
func (g *Game) NewGameAction() {
	g.engine = game.New(
		game.WithListener(g.feedback),
		game.WithLogger(g.logger),
	)
	g.moveNum = 0
	g.started = time.Now()
	g.gameOver = false
	g.result = ""
}

// FlipAction turns the board around.
func (g *Game) FlipAction() {
	g.renderer.SetFlipped(!g.renderer.Flipped())
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settings.Show(g.prefs, g.savePreferences, func(err error) {
		g.feedback.OnError(err.Error())
	})
}

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() board.Side {
	return game.SideToMove(g.moveNum)
}

// GameOver reports whether the current game has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// StatusText describes whose turn it is or how the game ended.
func (g *Game) StatusText() string {
	switch {
	case g.gameOver:
		return g.result
	case g.engine.IsPromotionPending():
		return fmt.Sprintf("%s promotes", g.engine.PromotionSide())
	case g.engine.InCheck(g.SideToMove()):
		return fmt.Sprintf("%s is in check", g.SideToMove())
	}
	return fmt.Sprintf("%s to move", g.SideToMove())
}

// Close saves preferences and closes storage.
func (g *Game) Close() error {
	if g.storage == nil {
		return nil
	}
	var result *multierror.Error
	g.prefs.LastPlayed = time.Now()
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		result = multierror.Append(result, err)
	}
	if err := g.storage.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
