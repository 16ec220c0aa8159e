package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	_ "image/png"
)

// AnimationFramesPerImage says how many ticks each image of an animation stays
// on screen. It is the same for all animations, until some animation needs
// to run at a different rate.
const AnimationFramesPerImage = 3

// Animation represents an instance of a running animation.
// It is cheap to copy this struct. You should make copies for every
// instance of an animation that you need.
// The idea is that once the images are loaded, there's no need to change
// this data. So you can just copy around the references to the images.
type Animation struct {
	Imgs     []*ebiten.Image
	ImgIndex int64
	FrameIdx int64
}

// NewAnimation loads name-01.png, name-02.png, ... or just name.png if there
// are no numbered images. An animation with no images is valid, it just has
// nothing to show.
func NewAnimation(fsys FS, name string) (a Animation) {
	count := 1
	for {
		fullName := name + "-" + fmt.Sprintf("%02d", count) + ".png"
		if !FileExists(fsys, fullName) {
			break
		}

		img := LoadImage(fsys, fullName)
		a.Imgs = append(a.Imgs, img)
		count++
	}

	if count == 1 {
		if img := LoadImage(fsys, name+".png"); img != nil {
			a.Imgs = append(a.Imgs, img)
		}
	}
	a.ImgIndex = 0
	return
}

// Step loops the animation forever.
func (a *Animation) Step() {
	if len(a.Imgs) == 0 {
		return
	}
	a.FrameIdx++
	if a.FrameIdx == AnimationFramesPerImage {
		a.FrameIdx = 0
		a.ImgIndex = (a.ImgIndex + 1) % int64(len(a.Imgs))
	}
}

func (a *Animation) CurrentImg() *ebiten.Image {
	if len(a.Imgs) == 0 {
		return nil
	}
	return a.Imgs[a.ImgIndex]
}
