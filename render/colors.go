package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted gray-blue
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 170, 0)   // Normal Green
	RgbCrash     = tcell.NewRGBColor(255, 0, 0)   // Error Red

	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBonus      = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbBonusTimer = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPopup      = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbOverlayBg  = tcell.NewRGBColor(40, 40, 60)    // Dark slate for overlay panel
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	// Status bar
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)

// Theme holds the resolved styles for one frame
type Theme struct {
	Base      tcell.Style
	Border    tcell.Style
	Text      tcell.Style
	Hint      tcell.Style
	Head      tcell.Style
	Body      tcell.Style
	Crash     tcell.Style
	Food      tcell.Style
	Bonus     tcell.Style
	BonusTime tcell.Style
	Popup     tcell.Style
	Title     tcell.Style
	Alert     tcell.Style
	Overlay   tcell.Style
	Status    tcell.Style
}

// NewTheme builds the RGB theme, or a monochrome one for terminals without color
func NewTheme(color bool) Theme {
	if !color {
		plain := tcell.StyleDefault
		return Theme{
			Base:      plain,
			Border:    plain,
			Text:      plain,
			Hint:      plain.Dim(true),
			Head:      plain.Bold(true),
			Body:      plain,
			Crash:     plain.Reverse(true),
			Food:      plain.Bold(true),
			Bonus:     plain.Bold(true),
			BonusTime: plain,
			Popup:     plain.Bold(true),
			Title:     plain.Bold(true),
			Alert:     plain.Bold(true).Reverse(true),
			Overlay:   plain.Reverse(true),
			Status:    plain.Reverse(true),
		}
	}

	base := tcell.StyleDefault.Background(RgbBackground)
	return Theme{
		Base:      base,
		Border:    base.Foreground(RgbBorder),
		Text:      base.Foreground(RgbText),
		Hint:      base.Foreground(RgbHint),
		Head:      base.Foreground(RgbSnakeHead),
		Body:      base.Foreground(RgbSnakeBody),
		Crash:     base.Foreground(RgbCrash).Bold(true),
		Food:      base.Foreground(RgbFood),
		Bonus:     base.Foreground(RgbBonus).Bold(true),
		BonusTime: base.Foreground(RgbBonusTimer),
		Popup:     base.Foreground(RgbPopup).Bold(true),
		Title:     base.Foreground(RgbSnakeHead).Bold(true),
		Alert:     tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbGameOver).Bold(true),
		Overlay:   tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbText),
		Status:    tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText),
	}
}
