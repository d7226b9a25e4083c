package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/commands"
	"camping-showcase/internal/logger"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible (avoids being cut off by taskbar/window bounds).
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	// Reused every frame when drawing the console to avoid per-frame color allocations.
	termBarColor  = rl.NewColor(40, 40, 40, 255)
	termLineColor = rl.NewColor(80, 80, 80, 255)
	termLogBg     = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the dev console at the bottom of the screen. ESC shows and hides it. While
// open it captures typing and the camera ignores mouse input; each submitted line runs
// through the command registry.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
}

// New returns a closed console that echoes to log and runs lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle shows or hides the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// SetFont sets the font used to draw the console. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Font returns the console font; a zero texture ID means raylib's default.
func (t *Terminal) Font() rl.Font {
	return t.font
}

// Submit echoes line to the log and executes it. Errors are logged, not returned.
func (t *Terminal) Submit(line string) {
	args, err := commands.Parse(line)
	if err == nil && args == nil {
		return
	}
	t.log.Log(prompt + line)
	if err == nil {
		err = t.reg.Execute(args)
	}
	if err != nil {
		t.log.Errorf("%v", err)
	}
}

// Update handles ESC (toggle), and when open: typing, paste, backspace, enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar at the bottom when open, and the recent log lines above it.
// Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D overlay coordinate system (correct in fullscreen).
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := rl.GetScreenWidth()
	screenH := rl.GetScreenHeight()
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	logHeight := maxLinesOnScreen * lineHeight
	logY := barY - logHeight
	if logY < 0 {
		logHeight = barY
		logY = 0
	}
	if logHeight > 0 {
		rl.DrawRectangle(0, int32(logY), int32(screenW), int32(logHeight), termLogBg)
	}
	lines := Tail(t.log.Lines(), maxLinesOnScreen)
	for i, line := range lines {
		t.text(Clip(line, maxLineLen), logY+i*lineHeight+padding, rl.LightGray)
	}

	// Input bar
	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", barY+padding, rl.White)
}

func (t *Terminal) text(s string, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(padding), float32(y)), float32(fontSize), 1, c)
		return
	}
	rl.DrawText(s, int32(padding), int32(y), int32(fontSize), c)
}

// Tail returns the last n lines.
func Tail(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}

// Clip shortens s to at most n bytes, ending in "..." when cut.
func Clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
