package tags

import "github.com/yohamta/donburi"

var (
	Ship      = donburi.NewTag().SetName("Ship")
	Starfield = donburi.NewTag().SetName("Starfield")
)
