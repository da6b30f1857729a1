package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Texture is implemented by every texture kind.
type Texture interface {
	Entity
	AsTextureBase() *TextureBase
}

// Image is a texture source. Source is a URL or a data URI; Data holds the
// encoded bytes once they are available locally.
type Image struct {
	Source string
	Format string
	Width  int
	Height int
	Data   []byte
}

// TextureBase is the generic texture. It is also a concrete kind on its own.
type TextureBase struct {
	UUID string
	Name string

	Image *Image

	Mapping          int
	WrapS            int
	WrapT            int
	MagFilter        int
	MinFilter        int
	Anisotropy       int
	Format           int
	Type             int
	Encoding         int
	Offset           mgl32.Vec2
	Repeat           mgl32.Vec2
	Center           mgl32.Vec2
	Rotation         float32
	GenerateMipmaps  bool
	PremultiplyAlpha bool
	FlipY            bool
	UnpackAlignment  int

	UserData map[string]any
}

func NewTexture(img *Image) *TextureBase {
	t := &TextureBase{}
	t.initTexture(img)
	return t
}

func (t *TextureBase) initTexture(img *Image) {
	t.UUID = uuid.NewString()
	t.Image = img
	t.Mapping = 300
	t.WrapS = 1001
	t.WrapT = 1001
	t.MagFilter = 1006
	t.MinFilter = 1008
	t.Anisotropy = 1
	t.Format = 1023
	t.Type = 1009
	t.Encoding = 3000
	t.Repeat = mgl32.Vec2{1, 1}
	t.GenerateMipmaps = true
	t.FlipY = true
	t.UnpackAlignment = 4
}

func (t *TextureBase) AsTextureBase() *TextureBase { return t }
func (*TextureBase) Kind() Kind                    { return KindTexture }

// CanvasTexture wraps a drawn canvas, kept as its encoded snapshot.
type CanvasTexture struct {
	TextureBase
}

func NewCanvasTexture(img *Image) *CanvasTexture {
	t := &CanvasTexture{}
	t.initTexture(img)
	return t
}

func (*CanvasTexture) Kind() Kind { return KindCanvasTexture }

type Mipmap struct {
	Width  int
	Height int
	Data   []byte
}

type CompressedTexture struct {
	TextureBase

	Mipmaps []Mipmap
}

func NewCompressedTexture(mipmaps []Mipmap, format int) *CompressedTexture {
	t := &CompressedTexture{Mipmaps: mipmaps}
	t.initTexture(nil)
	t.Format = format
	t.FlipY = false
	t.GenerateMipmaps = false
	return t
}

func (*CompressedTexture) Kind() Kind { return KindCompressedTexture }

// CubeTexture has one image per cube face: +x, -x, +y, -y, +z, -z.
type CubeTexture struct {
	TextureBase

	Images [6]*Image
}

func NewCubeTexture(images [6]*Image) *CubeTexture {
	t := &CubeTexture{Images: images}
	t.initTexture(nil)
	t.Mapping = 301
	t.FlipY = false
	return t
}

func (*CubeTexture) Kind() Kind { return KindCubeTexture }

type DataTexture struct {
	TextureBase

	Data   []float32
	Width  int
	Height int
}

func NewDataTexture(data []float32, width, height int) *DataTexture {
	t := &DataTexture{Data: data, Width: width, Height: height}
	t.initTexture(nil)
	t.MagFilter = 1003
	t.MinFilter = 1003
	t.GenerateMipmaps = false
	t.FlipY = false
	t.UnpackAlignment = 1
	return t
}

func (*DataTexture) Kind() Kind { return KindDataTexture }

type DepthTexture struct {
	TextureBase

	Width  int
	Height int
}

func NewDepthTexture(width, height int) *DepthTexture {
	t := &DepthTexture{Width: width, Height: height}
	t.initTexture(nil)
	t.Format = 1026
	t.Type = 1014
	t.MagFilter = 1003
	t.MinFilter = 1003
	t.GenerateMipmaps = false
	t.FlipY = false
	return t
}

func (*DepthTexture) Kind() Kind { return KindDepthTexture }

// VideoTexture streams frames from Source; frames are never stored.
type VideoTexture struct {
	TextureBase

	Source   string
	Loop     bool
	Autoplay bool
	Muted    bool
}

func NewVideoTexture(source string) *VideoTexture {
	t := &VideoTexture{Source: source, Loop: true, Autoplay: true, Muted: true}
	t.initTexture(nil)
	t.MinFilter = 1006
	t.GenerateMipmaps = false
	return t
}

func (*VideoTexture) Kind() Kind { return KindVideoTexture }
