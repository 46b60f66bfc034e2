package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// skinParts are the front faces of a skin, already upscaled by PoseScale.
type skinParts struct {
	head     image.Image
	headSide image.Image
	body     image.Image
	rightArm image.Image
	leftArm  image.Image
	rightLeg image.Image
	leftLeg  image.Image
}

// Texture regions on a 64x64 skin. Legacy 64x32 skins have no left limbs and
// mirror the right ones instead.
var (
	rectHead     = image.Rect(8, 8, 16, 16)
	rectHeadSide = image.Rect(0, 8, 8, 16)
	rectBody     = image.Rect(20, 20, 28, 32)
	rectRightArm = image.Rect(44, 20, 48, 32)
	rectRightLeg = image.Rect(4, 20, 8, 32)
	rectLeftArm  = image.Rect(36, 52, 40, 64)
	rectLeftLeg  = image.Rect(20, 52, 24, 64)
)

func cutSkin(skin image.Image) (*skinParts, error) {
	b := skin.Bounds()
	if b.Dx() != 64 || (b.Dy() != 64 && b.Dy() != 32) {
		return nil, fmt.Errorf("unexpected skin size %dx%d", b.Dx(), b.Dy())
	}
	legacy := b.Dy() == 32

	parts := &skinParts{
		head:     crop(skin, rectHead),
		headSide: crop(skin, rectHeadSide),
		body:     crop(skin, rectBody),
		rightArm: crop(skin, rectRightArm),
		rightLeg: crop(skin, rectRightLeg),
	}
	if legacy {
		parts.leftArm = mirror(parts.rightArm)
		parts.leftLeg = mirror(parts.rightLeg)
	} else {
		parts.leftArm = crop(skin, rectLeftArm)
		parts.leftLeg = crop(skin, rectLeftLeg)
	}
	return parts, nil
}

// crop copies r out of src and scales it up without smoothing so texels stay sharp.
func crop(src image.Image, r image.Rectangle) image.Image {
	r = r.Add(src.Bounds().Min)
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*PoseScale, r.Dy()*PoseScale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, r, draw.Src, nil)
	return dst
}

func mirror(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
