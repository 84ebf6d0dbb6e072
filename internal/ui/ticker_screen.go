package ui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/tickertape/internal/cache"
	"github.com/depeter/tickertape/internal/config"
	"github.com/depeter/tickertape/internal/feed"
	"github.com/depeter/tickertape/internal/motion"
	"github.com/depeter/tickertape/internal/settings"
)

const (
	fetchTimeout = 30 * time.Second
	speedStep    = 0.25
)

// TickerKeys are the parsed keybinds for the ticker screen. Fullscreen
// and Quit live here rather than on the app so that typing those letters
// into a settings field does not trigger them.
type TickerKeys struct {
	Pause      ebiten.Key
	SpeedUp    ebiten.Key
	SpeedDown  ebiten.Key
	Reverse    ebiten.Key
	Settings   ebiten.Key
	Fullscreen ebiten.Key
	Quit       ebiten.Key
}

// tickerRow is one marquee plus the feed data behind it.
type tickerRow struct {
	name    string
	marquee *Marquee

	// Guarded by TickerScreen.mu; written by the refresh goroutine and
	// badge callbacks, consumed on the game loop.
	items        []feed.Item
	badgeImgs    map[string]*ebiten.Image // url -> image; nil marks an in-flight request
	needsRebuild bool
}

type badgeRequest struct {
	row *tickerRow
	url string
}

// TickerScreen is the main screen: one auto-scrolling marquee row per
// feed source, refreshed in the background.
type TickerScreen struct {
	cfg    *config.Config
	prefs  *settings.Manager
	badges *cache.BadgeCache

	sources []feed.Source
	rows    []*tickerRow
	keys    TickerKeys

	// openSettings builds the settings screen when requested, so this
	// package does not fix its construction.
	openSettings func() Screen

	mu       sync.Mutex
	fetchErr error

	paused        bool
	builtFontSize float64
	helpAlpha     float64
	errDisplay    ErrorDisplay

	refreshing  bool
	stopRefresh chan struct{}
}

func NewTickerScreen(cfg *config.Config, prefs *settings.Manager, badges *cache.BadgeCache, sources []feed.Source, keys TickerKeys, openSettings func() Screen) *TickerScreen {
	ts := &TickerScreen{
		cfg:          cfg,
		prefs:        prefs,
		badges:       badges,
		sources:      sources,
		keys:         keys,
		openSettings: openSettings,
	}
	for _, src := range sources {
		ts.rows = append(ts.rows, &tickerRow{
			name:      src.Name(),
			marquee:   NewMarquee(cfg.Marquee.Speed, cfg.Marquee.Spacing),
			badgeImgs: make(map[string]*ebiten.Image),
		})
	}
	return ts
}

func (ts *TickerScreen) Name() string { return "Ticker" }

func (ts *TickerScreen) OnEnter() {
	if ts.refreshing {
		return
	}
	ts.refreshing = true
	ts.stopRefresh = make(chan struct{})
	go ts.refreshLoop(ts.stopRefresh)
}

func (ts *TickerScreen) OnExit() {
	if ts.refreshing {
		close(ts.stopRefresh)
		ts.refreshing = false
	}
}

// refreshLoop re-fetches every source on the configured interval. It
// re-reads the interval each cycle so settings changes apply without a
// restart.
func (ts *TickerScreen) refreshLoop(stop chan struct{}) {
	for {
		ts.refresh()
		interval := time.Duration(ts.cfg.Feeds.RefreshSeconds) * time.Second
		if interval < 5*time.Second {
			interval = 5 * time.Second
		}
		select {
		case <-stop:
			return
		case <-time.After(interval):
		}
	}
}

func (ts *TickerScreen) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	for i, src := range ts.sources {
		items, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("Failed to refresh %s: %v", src.Name(), err)
			ts.mu.Lock()
			ts.fetchErr = fmt.Errorf("%s: %w", src.Name(), err)
			ts.mu.Unlock()
			continue
		}

		ts.mu.Lock()
		row := ts.rows[i]
		row.items = items
		// Drop request markers so badges that failed last time get
		// another chance this cycle.
		for url, img := range row.badgeImgs {
			if img == nil {
				delete(row.badgeImgs, url)
			}
		}
		row.needsRebuild = true
		ts.mu.Unlock()
	}
}

// rebuildRow re-renders the strip from the row's current items and
// returns the badge URLs that still need loading. Caller holds mu.
func (ts *TickerScreen) rebuildRow(row *tickerRow) []badgeRequest {
	var missing []badgeRequest
	spec := StripSpec{
		FontSize: ts.cfg.Marquee.FontSize,
		Height:   ts.rowHeight(),
	}

	items := make([]StripItem, 0, len(row.items))
	for _, it := range row.items {
		si := StripItem{Text: it.Text, Detail: it.Detail}
		if clr, ok := ParseHexColor(it.Accent); ok {
			si.Accent = clr
		}
		if it.BadgeURL != "" {
			if img, ok := row.badgeImgs[it.BadgeURL]; ok && img != nil {
				si.Badge = img
			} else if !ok {
				row.badgeImgs[it.BadgeURL] = nil
				missing = append(missing, badgeRequest{row: row, url: it.BadgeURL})
			}
		}
		items = append(items, si)
	}

	row.marquee.SetStrip(BuildStrip(items, spec))
	return missing
}

// applyPendingRebuilds rebuilds dirty strips on the game loop, then kicks
// off badge loads outside the lock. A load that completes synchronously
// (already cached) re-marks the row and is picked up next frame.
func (ts *TickerScreen) applyPendingRebuilds() {
	var wanted []badgeRequest

	ts.mu.Lock()
	if ts.builtFontSize != ts.cfg.Marquee.FontSize {
		ts.builtFontSize = ts.cfg.Marquee.FontSize
		for _, row := range ts.rows {
			row.needsRebuild = true
		}
	}
	for _, row := range ts.rows {
		if !row.needsRebuild {
			continue
		}
		row.needsRebuild = false
		wanted = append(wanted, ts.rebuildRow(row)...)
	}
	if ts.fetchErr != nil {
		ts.errDisplay.Show(ts.fetchErr.Error())
		ts.fetchErr = nil
	}
	ts.mu.Unlock()

	for _, req := range wanted {
		ts.badges.LoadAsync(req.url, func(img *ebiten.Image) {
			ts.mu.Lock()
			req.row.badgeImgs[req.url] = img
			req.row.needsRebuild = true
			ts.mu.Unlock()
		})
	}
}

func (ts *TickerScreen) rowHeight() float64 {
	return ts.cfg.Marquee.FontSize + 2*RowPadY
}

func (ts *TickerScreen) Update() (*ScreenTransition, error) {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ts.keys.Pause) || EvdevPlayPauseJustPressed() {
		ts.paused = !ts.paused
	}
	if inpututil.IsKeyJustPressed(ts.keys.SpeedUp) {
		ts.prefs.AdjustSpeedFactor(speedStep)
		ts.savePrefs()
	}
	if inpututil.IsKeyJustPressed(ts.keys.SpeedDown) {
		ts.prefs.AdjustSpeedFactor(-speedStep)
		ts.savePrefs()
	}
	if inpututil.IsKeyJustPressed(ts.keys.Reverse) {
		ts.prefs.ToggleReverse()
		ts.savePrefs()
	}
	if inpututil.IsKeyJustPressed(ts.keys.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ts.keys.Quit) {
		return nil, ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ts.keys.Settings) && ts.openSettings != nil {
		return &ScreenTransition{Type: TransitionPush, Screen: ts.openSettings()}, nil
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		ts.errDisplay.HandleClick(mx, my)
	}

	ts.applyPendingRebuilds()

	// Effective velocity is recomputed every frame so config and
	// preference edits land mid-glide, eased by the motion state.
	target := ts.cfg.Marquee.Speed * ts.prefs.Prefs().SpeedFactor
	if ts.prefs.Prefs().Reverse {
		target = -target
	}
	if ts.paused {
		target = 0
	}

	rowH := ts.rowHeight()
	labelH := float64(FontSizeSmall) + 6
	y := float64(HeaderHeight + 16)
	for _, row := range ts.rows {
		y += labelH
		row.marquee.SetViewport(0, y, ScreenWidth, rowH)
		row.marquee.SetTargetVelocity(target)
		row.marquee.SetSpacing(ts.cfg.Marquee.Spacing)
		row.marquee.Update(now)
		y += rowH + ts.cfg.Marquee.RowGap
	}

	helpTarget := 0.0
	if ts.paused {
		helpTarget = 1.0
	}
	ts.helpAlpha = Lerp(ts.helpAlpha, helpTarget, HelpFadeSpeed)

	return nil, nil
}

func (ts *TickerScreen) Draw(dst *ebiten.Image) {
	DrawText(dst, "TickerTape", SectionPadding, 24, FontSizeTitle, ColorPrimary)

	// State glyph next to the title: pause bars, or a chevron showing the
	// scroll direction.
	tw, _ := MeasureText("TickerTape", FontSizeTitle)
	gx := float32(SectionPadding + tw + 28)
	gy := float32(24 + float64(FontSizeTitle)*0.6)
	if ts.paused {
		drawPauseIcon(dst, gx, gy, 10, ColorAccent)
	} else {
		drawChevronIcon(dst, gx, gy, 10, !ts.prefs.Prefs().Reverse, ColorTextMuted)
	}

	clock := time.Now().Format("15:04:05")
	cw, _ := MeasureText(clock, FontSizeTitle)
	DrawText(dst, clock, ScreenWidth-SectionPadding-cw, 24, FontSizeTitle, ColorText)

	if ts.paused {
		DrawTextCentered(dst, "PAUSED", ScreenWidth/2, 24+float64(FontSizeTitle)/2, FontSizeHeading, ColorAccent)
	}

	rowH := ts.rowHeight()
	labelH := float64(FontSizeSmall) + 6
	y := float64(HeaderHeight + 16)
	for _, row := range ts.rows {
		DrawText(dst, row.name, SectionPadding, y, FontSizeSmall, ColorTextMuted)
		y += labelH
		row.marquee.Draw(dst)
		y += rowH
		vector.DrawFilledRect(dst, 0, float32(y+4), ScreenWidth, 1, ColorSurface, false)
		y += ts.cfg.Marquee.RowGap
	}

	ts.errDisplay.Draw(dst, SectionPadding, ScreenHeight-96, FontSizeBody)

	if ts.helpAlpha > 0.01 {
		help := "Space pause   K/J speed   R reverse   S settings   drag a row to scrub, flick to throw"
		hw, _ := MeasureText(help, FontSizeBody)
		DrawText(dst, help, (ScreenWidth-hw)/2, ScreenHeight-48, FontSizeBody, ScaleAlpha(ColorTextSecondary, ts.helpAlpha))
	}
}

// DebugRows exposes per-row motion state for the debug overlay.
func (ts *TickerScreen) DebugRows() []MarqueeDebug {
	rows := make([]MarqueeDebug, 0, len(ts.rows))
	for _, row := range ts.rows {
		m := row.marquee
		rows = append(rows, MarqueeDebug{
			Name:     row.name,
			Offset:   m.Offset(),
			Velocity: m.Velocity(),
			Target:   m.TargetVelocity(),
			StripW:   m.StripWidth(),
			Copies:   motion.RepeatCount(m.StripWidth(), m.Spacing(), m.ViewportWidth()) + 1,
			Dragging: m.Dragging(),
		})
	}
	return rows
}

func (ts *TickerScreen) savePrefs() {
	if err := ts.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
