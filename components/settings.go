package components

import "github.com/yohamta/donburi"

// SettingsData stores the overlay toggles that survive restarts.
type SettingsData struct {
	Overlay  bool
	ShowRays bool
}

var Settings = donburi.NewComponentType[SettingsData]()
