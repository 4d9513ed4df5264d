package model

// Preferences holds the visual settings of the panel.
type Preferences struct {
	Opacity         float64 `json:"opacity"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
}

const (
	DefaultOpacity         = 0.8
	DefaultBackgroundColor = "#2c3e50"
	DefaultTextColor       = "#ecf0f1"
)

func DefaultPreferences() Preferences {
	return Preferences{
		Opacity:         DefaultOpacity,
		BackgroundColor: DefaultBackgroundColor,
		TextColor:       DefaultTextColor,
	}
}
