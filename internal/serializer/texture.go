package serializer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/engine"
)

// imageDoc references an image by URL or embeds it as a data URI.
type imageDoc struct {
	Src    string `json:"src"`
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

func writeImage(img *engine.Image) *imageDoc {
	if img == nil {
		return nil
	}
	d := &imageDoc{Src: img.Source, Format: img.Format, Width: img.Width, Height: img.Height}
	if d.Src == "" && len(img.Data) > 0 {
		d.Src = assets.EncodeDataURI(assets.ContentType(img.Data), img.Data)
	}
	return d
}

// readImage returns the image right away. Embedded bytes are decoded on the
// spot; remote bytes arrive through the loader.
func readImage(d *imageDoc, l *loader) *engine.Image {
	if d == nil {
		return nil
	}
	img := &engine.Image{Source: d.Src, Format: d.Format, Width: d.Width, Height: d.Height}
	if d.Src == "" {
		return img
	}
	fill := func(data []byte) error {
		img.Data = data
		if info, err := assets.ProbeImage(data); err == nil {
			img.Format = info.Format
			img.Width = info.Width
			img.Height = info.Height
		}
		return nil
	}
	if assets.IsDataURI(d.Src) {
		// Embedded images keep no source; they are written back from Data.
		_, data, err := assets.DecodeDataURI(d.Src)
		if err == nil {
			img.Source = ""
			_ = fill(data)
			return img
		}
	}
	l.fetch(d.Src, fill)
	return img
}

type textureFields struct {
	UUID string `json:"uuid"`
	Name string `json:"name,omitempty"`

	Image *imageDoc `json:"image,omitempty"`

	Mapping          int         `json:"mapping"`
	Wrap             [2]int      `json:"wrap"`
	MagFilter        int         `json:"magFilter"`
	MinFilter        int         `json:"minFilter"`
	Anisotropy       int         `json:"anisotropy"`
	Format           int         `json:"format"`
	Type             int         `json:"type"`
	Encoding         int         `json:"encoding"`
	Offset           *mgl32.Vec2 `json:"offset,omitempty"`
	Repeat           *mgl32.Vec2 `json:"repeat,omitempty"`
	Center           *mgl32.Vec2 `json:"center,omitempty"`
	Rotation         float32     `json:"rotation,omitempty"`
	GenerateMipmaps  *bool       `json:"generateMipmaps,omitempty"`
	PremultiplyAlpha bool        `json:"premultiplyAlpha,omitempty"`
	FlipY            *bool       `json:"flipY,omitempty"`
	UnpackAlignment  int         `json:"unpackAlignment"`

	UserData map[string]any `json:"userData,omitempty"`
}

func writeTextureFields(t *engine.TextureBase, d *textureFields) {
	d.UUID = t.UUID
	d.Name = t.Name
	d.Image = writeImage(t.Image)
	d.Mapping = t.Mapping
	d.Wrap = [2]int{t.WrapS, t.WrapT}
	d.MagFilter = t.MagFilter
	d.MinFilter = t.MinFilter
	d.Anisotropy = t.Anisotropy
	d.Format = t.Format
	d.Type = t.Type
	d.Encoding = t.Encoding
	d.Offset = ptr(t.Offset)
	d.Repeat = ptr(t.Repeat)
	d.Center = ptr(t.Center)
	d.Rotation = t.Rotation
	d.GenerateMipmaps = ptr(t.GenerateMipmaps)
	d.PremultiplyAlpha = t.PremultiplyAlpha
	d.FlipY = ptr(t.FlipY)
	d.UnpackAlignment = t.UnpackAlignment
	d.UserData = t.UserData
}

func applyTextureFields(d *textureFields, t *engine.TextureBase, l *loader) {
	if d.UUID != "" {
		t.UUID = d.UUID
	}
	t.Name = d.Name
	t.Mapping = d.Mapping
	t.WrapS, t.WrapT = d.Wrap[0], d.Wrap[1]
	t.MagFilter = d.MagFilter
	t.MinFilter = d.MinFilter
	t.Anisotropy = d.Anisotropy
	t.Format = d.Format
	t.Type = d.Type
	t.Encoding = d.Encoding
	set(&t.Offset, d.Offset)
	set(&t.Repeat, d.Repeat)
	set(&t.Center, d.Center)
	t.Rotation = d.Rotation
	set(&t.GenerateMipmaps, d.GenerateMipmaps)
	t.PremultiplyAlpha = d.PremultiplyAlpha
	set(&t.FlipY, d.FlipY)
	t.UnpackAlignment = d.UnpackAlignment
	if d.UserData != nil {
		t.UserData = d.UserData
	}
	if d.Image != nil {
		t.Image = readImage(d.Image, l)
	}
}

type textureDoc struct {
	envelope
	textureFields
}

func writeTexture(t *engine.TextureBase, d *textureDoc) error {
	writeTextureFields(t, &d.textureFields)
	return nil
}

func readTexture(d *textureDoc, t *engine.TextureBase, l *loader) (*engine.TextureBase, error) {
	if t == nil {
		t = engine.NewTexture(nil)
	}
	applyTextureFields(&d.textureFields, t, l)
	return t, nil
}

func writeCanvasTexture(t *engine.CanvasTexture, d *textureDoc) error {
	writeTextureFields(t.AsTextureBase(), &d.textureFields)
	return nil
}

// readCanvasTexture needs the canvas snapshot; a canvas without one cannot
// be redrawn.
func readCanvasTexture(d *textureDoc, t *engine.CanvasTexture, l *loader) (*engine.CanvasTexture, error) {
	if d.Image == nil {
		return nil, &FieldError{Field: "image"}
	}
	if t == nil {
		t = engine.NewCanvasTexture(nil)
	}
	applyTextureFields(&d.textureFields, t.AsTextureBase(), l)
	return t, nil
}

type mipmapDoc struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []byte `json:"data"`
}

type compressedDoc struct {
	envelope
	textureFields

	Mipmaps []mipmapDoc `json:"mipmaps"`
}

func writeCompressed(t *engine.CompressedTexture, d *compressedDoc) error {
	writeTextureFields(t.AsTextureBase(), &d.textureFields)
	d.Mipmaps = make([]mipmapDoc, 0, len(t.Mipmaps))
	for _, m := range t.Mipmaps {
		d.Mipmaps = append(d.Mipmaps, mipmapDoc(m))
	}
	return nil
}

func readCompressed(d *compressedDoc, t *engine.CompressedTexture, l *loader) (*engine.CompressedTexture, error) {
	if d.Mipmaps == nil {
		return nil, &FieldError{Field: "mipmaps"}
	}
	if t == nil {
		t = engine.NewCompressedTexture(nil, d.Format)
	}
	applyTextureFields(&d.textureFields, t.AsTextureBase(), l)
	t.Mipmaps = make([]engine.Mipmap, 0, len(d.Mipmaps))
	for _, m := range d.Mipmaps {
		t.Mipmaps = append(t.Mipmaps, engine.Mipmap(m))
	}
	return t, nil
}

type cubeDoc struct {
	envelope
	textureFields

	Images []*imageDoc `json:"images"`
}

func writeCube(t *engine.CubeTexture, d *cubeDoc) error {
	writeTextureFields(t.AsTextureBase(), &d.textureFields)
	d.Images = make([]*imageDoc, len(t.Images))
	for i, img := range t.Images {
		d.Images[i] = writeImage(img)
	}
	return nil
}

// readCube fetches the six faces concurrently.
func readCube(d *cubeDoc, t *engine.CubeTexture, l *loader) (*engine.CubeTexture, error) {
	if len(d.Images) != 6 {
		return nil, &FieldError{Field: "images"}
	}
	if t == nil {
		t = engine.NewCubeTexture([6]*engine.Image{})
	}
	applyTextureFields(&d.textureFields, t.AsTextureBase(), l)
	for i, img := range d.Images {
		t.Images[i] = readImage(img, l)
	}
	return t, nil
}

type dataTextureDoc struct {
	envelope
	textureFields

	Data   []float32 `json:"data"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

func writeDataTexture(t *engine.DataTexture, d *dataTextureDoc) error {
	writeTextureFields(t.AsTextureBase(), &d.textureFields)
	d.Data = t.Data
	d.Width = t.Width
	d.Height = t.Height
	return nil
}

func readDataTexture(d *dataTextureDoc, t *engine.DataTexture, l *loader) (*engine.DataTexture, error) {
	if d.Data == nil {
		return nil, &FieldError{Field: "data"}
	}
	if t == nil {
		t = engine.NewDataTexture(nil, d.Width, d.Height)
	}
	applyTextureFields(&d.textureFields, t.AsTextureBase(), l)
	t.Data = d.Data
	t.Width = d.Width
	t.Height = d.Height
	return t, nil
}

type depthTextureDoc struct {
	envelope
	textureFields

	Width  int `json:"width"`
	Height int `json:"height"`
}

func writeDepthTexture(t *engine.DepthTexture, d *depthTextureDoc) error {
	writeTextureFields(t.AsTextureBase(), &d.textureFields)
	d.Width = t.Width
	d.Height = t.Height
	return nil
}

func readDepthTexture(d *depthTextureDoc, t *engine.DepthTexture, l *loader) (*engine.DepthTexture, error) {
	if t == nil {
		t = engine.NewDepthTexture(d.Width, d.Height)
	}
	applyTextureFields(&d.textureFields, t.AsTextureBase(), l)
	t.Width = d.Width
	t.Height = d.Height
	return t, nil
}

type videoDoc struct {
	envelope
	textureFields

	Source   string `json:"source"`
	Loop     bool   `json:"loop"`
	Autoplay bool   `json:"autoplay"`
	Muted    bool   `json:"muted"`
}

func writeVideo(t *engine.VideoTexture, d *videoDoc) error {
	writeTextureFields(t.AsTextureBase(), &d.textureFields)
	d.Source = t.Source
	d.Loop = t.Loop
	d.Autoplay = t.Autoplay
	d.Muted = t.Muted
	return nil
}

// readVideo only records the stream source; frames are never fetched.
func readVideo(d *videoDoc, t *engine.VideoTexture, l *loader) (*engine.VideoTexture, error) {
	if d.Source == "" {
		return nil, &FieldError{Field: "source"}
	}
	if t == nil {
		t = engine.NewVideoTexture(d.Source)
	}
	applyTextureFields(&d.textureFields, t.AsTextureBase(), l)
	t.Source = d.Source
	t.Loop = d.Loop
	t.Autoplay = d.Autoplay
	t.Muted = d.Muted
	return t, nil
}
