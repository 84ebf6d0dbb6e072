package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/tickertape/internal/cache"
	"github.com/depeter/tickertape/internal/config"
	"github.com/depeter/tickertape/internal/settings"
)

// SettingsScreen allows editing configuration and playback preferences.
// Marquee and playback changes apply live; feed connection changes take
// effect on the next start.
type SettingsScreen struct {
	cfg    *config.Config
	prefs  *settings.Manager
	badges *cache.BadgeCache

	ScrollState

	sections     []settingsSection
	sectionIndex int
	itemIndex    int
	editing      bool
	editInput    TextInput
	editError    string
	cacheStatus  string

	// Row rects for mouse clicks (flat list across all sections)
	rowRects []settingsRowRect
	// Paste button rect (only valid while editing)
	pasteRect ButtonRect

	OnSave func()
}

type settingsRowRect struct {
	SectionIdx int
	ItemIdx    int
	X, Y, W, H float64
}

type settingsSection struct {
	Label string
	Items []settingsItem
}

type settingsItem struct {
	Label    string
	Value    func() string
	OnChange func(val string) error // returns error if validation fails
	Options  []string               // when set, Left/Right cycles through these instead of text edit
	Action   func()                 // when set, Enter/click runs this instead of editing
}

var (
	onOffOptions       = []string{"on", "off"}
	directionOptions   = []string{"normal", "reversed"}
	speedFactorOptions = []string{"0.25", "0.5", "0.75", "1", "1.25", "1.5", "2", "3"}
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func NewSettingsScreen(cfg *config.Config, prefs *settings.Manager, badges *cache.BadgeCache, onSave func()) *SettingsScreen {
	ss := &SettingsScreen{
		cfg:    cfg,
		prefs:  prefs,
		badges: badges,
		OnSave: onSave,
	}

	ss.sections = []settingsSection{
		{
			Label: "Marquee",
			Items: []settingsItem{
				{Label: "Speed (px/s)", Value: func() string { return fmt.Sprintf("%.0f", cfg.Marquee.Speed) }, OnChange: func(v string) error {
					f, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("invalid number: %s", v)
					}
					if f <= 0 {
						return fmt.Errorf("speed must be positive")
					}
					cfg.Marquee.Speed = f
					return nil
				}},
				{Label: "Spacing (px)", Value: func() string { return fmt.Sprintf("%.0f", cfg.Marquee.Spacing) }, OnChange: func(v string) error {
					f, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("invalid number: %s", v)
					}
					if f < 0 {
						return fmt.Errorf("spacing cannot be negative")
					}
					cfg.Marquee.Spacing = f
					return nil
				}},
				{Label: "Font Size", Value: func() string { return fmt.Sprintf("%.0f", cfg.Marquee.FontSize) }, OnChange: func(v string) error {
					f, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("invalid number: %s", v)
					}
					if f <= 0 {
						return fmt.Errorf("font size must be positive")
					}
					cfg.Marquee.FontSize = f
					return nil
				}},
				{Label: "Row Gap", Value: func() string { return fmt.Sprintf("%.0f", cfg.Marquee.RowGap) }, OnChange: func(v string) error {
					f, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("invalid number: %s", v)
					}
					if f < 0 {
						return fmt.Errorf("row gap cannot be negative")
					}
					cfg.Marquee.RowGap = f
					return nil
				}},
			},
		},
		{
			Label: "Playback",
			Items: []settingsItem{
				{Label: "Speed Factor", Value: func() string {
					return strconv.FormatFloat(prefs.Prefs().SpeedFactor, 'f', -1, 64)
				}, OnChange: func(v string) error {
					f, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("invalid number: %s", v)
					}
					prefs.SetSpeedFactor(f)
					return nil
				}, Options: speedFactorOptions},
				{Label: "Direction", Value: func() string {
					if prefs.Prefs().Reverse {
						return "reversed"
					}
					return "normal"
				}, OnChange: func(v string) error {
					prefs.SetReverse(v == "reversed")
					return nil
				}, Options: directionOptions},
			},
		},
		{
			Label: "Feeds",
			Items: []settingsItem{
				{Label: "Refresh (seconds)", Value: func() string { return fmt.Sprintf("%d", cfg.Feeds.RefreshSeconds) }, OnChange: func(v string) error {
					n, err := strconv.Atoi(v)
					if err != nil {
						return fmt.Errorf("invalid number: %s", v)
					}
					if n < 5 {
						return fmt.Errorf("refresh must be at least 5 seconds")
					}
					cfg.Feeds.RefreshSeconds = n
					return nil
				}},
				{Label: "Playlist Path", Value: func() string { return cfg.Feeds.Playlist }, OnChange: func(v string) error { cfg.Feeds.Playlist = v; return nil }},
				{Label: "Jellyfin", Value: func() string { return onOff(cfg.Feeds.Jellyfin.Enabled) }, OnChange: func(v string) error {
					cfg.Feeds.Jellyfin.Enabled = v == "on"
					return nil
				}, Options: onOffOptions},
				{Label: "Server URL", Value: func() string { return cfg.Feeds.Jellyfin.URL }, OnChange: func(v string) error { cfg.Feeds.Jellyfin.URL = v; return nil }},
				{Label: "API Key", Value: func() string { return cfg.Feeds.Jellyfin.APIKey }, OnChange: func(v string) error { cfg.Feeds.Jellyfin.APIKey = v; return nil }},
				{Label: "User ID", Value: func() string { return cfg.Feeds.Jellyfin.UserID }, OnChange: func(v string) error { cfg.Feeds.Jellyfin.UserID = v; return nil }},
				{Label: "Clear Badge Cache", Value: func() string { return ss.cacheStatus }, Action: func() {
					if err := badges.Clear(); err != nil {
						ss.cacheStatus = err.Error()
						return
					}
					ss.cacheStatus = "cleared"
				}},
			},
		},
		{
			Label: "Window",
			Items: []settingsItem{
				{Label: "Fullscreen", Value: func() string { return onOff(cfg.Window.Fullscreen) }, OnChange: func(v string) error {
					cfg.Window.Fullscreen = v == "on"
					ebiten.SetFullscreen(cfg.Window.Fullscreen)
					return nil
				}, Options: onOffOptions},
			},
		},
	}

	return ss
}

func (ss *SettingsScreen) Name() string { return "Settings" }
func (ss *SettingsScreen) OnEnter()     { ss.Reset() }
func (ss *SettingsScreen) OnExit() {
	if ss.OnSave != nil {
		ss.OnSave()
	}
}

// Rows scroll between the fixed header and the bottom padding.
const (
	settingsRowH    = 40.0
	settingsViewTop = float64(HeaderHeight + 24)
)

// rowBounds returns the content-space vertical extent of one row, mirroring
// the layout walk Draw performs.
func (ss *SettingsScreen) rowBounds(section, item int) (top, bottom float64) {
	y := settingsViewTop
	for si, sec := range ss.sections {
		y += FontSizeHeading + 8
		for ii := range sec.Items {
			if si == section && ii == item {
				return y - 4, y - 4 + settingsRowH
			}
			y += settingsRowH
		}
		y += 16
	}
	return 0, 0
}

// contentHeight returns the total laid-out height of all sections.
func (ss *SettingsScreen) contentHeight() float64 {
	y := settingsViewTop
	for _, sec := range ss.sections {
		y += FontSizeHeading + 8
		y += settingsRowH * float64(len(sec.Items))
		y += 16
	}
	return y
}

func (ss *SettingsScreen) maxScroll() float64 {
	m := ss.contentHeight() - (ScreenHeight - SectionPadding)
	if m < 0 {
		return 0
	}
	return m
}

// focusedItem returns the currently focused settings item.
func (ss *SettingsScreen) focusedItem() *settingsItem {
	return &ss.sections[ss.sectionIndex].Items[ss.itemIndex]
}

// cycleOption moves to the next or previous option for an Options item.
func cycleOption(item *settingsItem, delta int) {
	current := item.Value()
	idx := -1
	for i, opt := range item.Options {
		if opt == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx += delta
		if idx < 0 {
			idx = len(item.Options) - 1
		} else if idx >= len(item.Options) {
			idx = 0
		}
	}
	item.OnChange(item.Options[idx])
}

// activate runs the focused item's primary interaction: run its action,
// cycle its options, or open the text editor.
func (ss *SettingsScreen) activate(item *settingsItem) {
	switch {
	case item.Action != nil:
		item.Action()
	case item.Options != nil:
		cycleOption(item, 1)
	default:
		ss.editInput = NewTextInput(item.Value())
		ss.editing = true
		ss.editError = ""
	}
}

func (ss *SettingsScreen) Update() (*ScreenTransition, error) {
	_, enter, back := InputState()

	if ss.editing {
		if ss.editInput.Update() {
			ss.editError = "" // clear error as user types
		}
		// Paste button click
		mx, my, clicked := MouseJustClicked()
		if clicked && PointInRect(mx, my, ss.pasteRect.X, ss.pasteRect.Y, ss.pasteRect.W, ss.pasteRect.H) {
			if clip := readClipboard(); clip != "" {
				ss.editInput.insertAtCursor(clip)
				ss.editError = ""
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			// Apply edit with validation
			item := ss.focusedItem()
			if err := item.OnChange(ss.editInput.Text); err != nil {
				ss.editError = err.Error()
			} else {
				ss.editing = false
				ss.editError = ""
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			ss.editing = false
			ss.editError = ""
		}
		return nil, nil
	}

	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	ss.HandleMouseWheel(ss.maxScroll())

	// Mouse click handling
	mx, my, clicked := MouseJustClicked()
	if clicked {
		for _, rect := range ss.rowRects {
			if PointInRect(mx, my, rect.X, rect.Y, rect.W, rect.H) {
				ss.sectionIndex = rect.SectionIdx
				ss.itemIndex = rect.ItemIdx
				ss.activate(ss.focusedItem())
				return nil, nil
			}
		}
	}

	dir, _, _ := InputState()
	switch dir {
	case DirUp:
		ss.itemIndex--
		if ss.itemIndex < 0 {
			ss.sectionIndex--
			if ss.sectionIndex < 0 {
				ss.sectionIndex = 0
				ss.itemIndex = 0
			} else {
				ss.itemIndex = len(ss.sections[ss.sectionIndex].Items) - 1
			}
		}
		top, bottom := ss.rowBounds(ss.sectionIndex, ss.itemIndex)
		ss.EnsureVisible(top, bottom, settingsViewTop, ScreenHeight-SectionPadding)
	case DirDown:
		ss.itemIndex++
		if ss.itemIndex >= len(ss.sections[ss.sectionIndex].Items) {
			ss.sectionIndex++
			if ss.sectionIndex >= len(ss.sections) {
				ss.sectionIndex = len(ss.sections) - 1
				ss.itemIndex = len(ss.sections[ss.sectionIndex].Items) - 1
			} else {
				ss.itemIndex = 0
			}
		}
		top, bottom := ss.rowBounds(ss.sectionIndex, ss.itemIndex)
		ss.EnsureVisible(top, bottom, settingsViewTop, ScreenHeight-SectionPadding)
	case DirLeft:
		item := ss.focusedItem()
		if item.Options != nil {
			cycleOption(item, -1)
		}
	case DirRight:
		item := ss.focusedItem()
		if item.Options != nil {
			cycleOption(item, 1)
		}
	}

	if enter {
		ss.activate(ss.focusedItem())
	}

	return nil, nil
}

func (ss *SettingsScreen) Draw(dst *ebiten.Image) {
	ss.Animate()

	y := settingsViewTop
	ss.rowRects = ss.rowRects[:0] // reset

	for si, sec := range ss.sections {
		DrawText(dst, sec.Label, SectionPadding, y-ss.ScrollY, FontSizeHeading, ColorPrimary)
		y += FontSizeHeading + 8

		for ii, item := range sec.Items {
			isFocused := si == ss.sectionIndex && ii == ss.itemIndex
			rowH := float32(settingsRowH)
			rowX := float64(SectionPadding - 8)
			rowW := float64(ScreenWidth - SectionPadding*2 + 16)
			sy := y - ss.ScrollY

			// Store the on-screen rect for mouse clicks
			ss.rowRects = append(ss.rowRects, settingsRowRect{
				SectionIdx: si, ItemIdx: ii,
				X: rowX, Y: sy - 4, W: rowW, H: float64(rowH),
			})

			if isFocused {
				vector.DrawFilledRect(dst, float32(rowX), float32(sy-4),
					float32(rowW), rowH, ColorSurfaceHover, false)
			}

			labelColor := ColorTextSecondary
			if isFocused {
				labelColor = ColorText
			}
			DrawText(dst, item.Label, SectionPadding, sy+4, FontSizeBody, labelColor)

			valueX := SectionPadding + 300.0
			value := item.Value()
			isEditing := ss.editing && isFocused

			if isEditing {
				value = ss.editInput.DisplayText()
				// Border around value field when editing
				vx := float32(valueX - 4)
				vw := float32(rowW) - float32(300) - 8
				vector.StrokeRect(dst, vx, float32(sy-2), vw, float32(rowH)-4, 2, ColorFocusBorder, false)
				// Paste button at the right end of the edit field
				pasteW := 60.0
				pasteH := float64(rowH) - 8
				pasteX := float64(vx+vw) - pasteW - 4
				pasteY := sy - 1
				ss.pasteRect = ButtonRect{X: pasteX, Y: pasteY, W: pasteW, H: pasteH}
				vector.DrawFilledRect(dst, float32(pasteX), float32(pasteY), float32(pasteW), float32(pasteH), ColorSurface, false)
				vector.StrokeRect(dst, float32(pasteX), float32(pasteY), float32(pasteW), float32(pasteH), 1, ColorTextMuted, false)
				DrawTextCentered(dst, "Paste", pasteX+pasteW/2, pasteY+pasteH/2, FontSizeSmall, ColorTextSecondary)
			}

			if item.Options != nil && isFocused && !isEditing {
				// Draw arrows around value for cycle-able items
				DrawText(dst, "◀", valueX-20, sy+4, FontSizeBody, ColorPrimary)
				DrawText(dst, value, valueX, sy+4, FontSizeBody, ColorText)
				w, _ := MeasureText(value, FontSizeBody)
				DrawText(dst, "▶", valueX+w+8, sy+4, FontSizeBody, ColorPrimary)
			} else if !isEditing {
				valueColor := ColorTextSecondary
				if isFocused {
					valueColor = ColorText
				}
				DrawText(dst, value, valueX, sy+4, FontSizeBody, valueColor)
			} else {
				DrawText(dst, value, valueX, sy+4, FontSizeBody, ColorText)
			}

			// Show edit error below the row
			if isEditing && ss.editError != "" {
				DrawText(dst, ss.editError, valueX, sy+float64(rowH)-4, FontSizeSmall, ColorError)
			}

			y += float64(rowH)
		}
		y += 16
	}

	// Header band sits over the scrolled rows
	vector.DrawFilledRect(dst, 0, 0, ScreenWidth, HeaderHeight+16, ColorBackground, false)
	DrawText(dst, "Settings", SectionPadding, HeaderHeight-24, FontSizeTitle, ColorText)
}
