package engine

import "math"

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// ColorFromHex builds a color from a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	var c Color
	c.SetHex(hex)
	return c
}

func (c *Color) SetHex(hex uint32) {
	c.R = float32((hex>>16)&0xff) / 255
	c.G = float32((hex>>8)&0xff) / 255
	c.B = float32(hex&0xff) / 255
}

// Hex packs the color into 0xRRGGBB, clamping each channel.
func (c Color) Hex() uint32 {
	return channel(c.R)<<16 | channel(c.G)<<8 | channel(c.B)
}

func channel(v float32) uint32 {
	v = float32(math.Max(0, math.Min(1, float64(v))))
	return uint32(math.Round(float64(v) * 255))
}
