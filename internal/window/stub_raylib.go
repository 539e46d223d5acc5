//go:build !cgo || ebiten

package window

import "github.com/san-kum/wirecube/internal/scene"

func RunRaylib(_ *scene.Player, _ Options) error { return ErrNoWindow }
