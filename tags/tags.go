package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Mover  = donburi.NewTag().SetName("Mover")
	Light  = donburi.NewTag().SetName("Light")
)
