package components

import (
	"github.com/automoto/wideworld/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View    *camera.Camera
	Control camera.Controller
}

var Camera = donburi.NewComponentType[CameraData]()
