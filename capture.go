package glshape

import "image"

// Capture reads the current framebuffer into an image with the top row first.
func (c *Context) Capture() (*image.RGBA, error) {
	if c.state == StateTerminated {
		return nil, ErrContextClosed
	}
	width, height := c.window.FramebufferSize()
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	pixels := make([]byte, width*height*4)
	c.device.ReadPixels(Viewport{Width: int32(width), Height: int32(height)}, pixels)
	flipRows(pixels, width*4, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img, nil
}

// Render draws a single frame without presenting or polling events, for
// reading back with Capture.
func (c *Context) Render() error {
	if c.state == StateTerminated {
		return ErrContextClosed
	}
	c.drawFrame()
	return nil
}

// flipRows reverses row order in place (OpenGL origin is bottom-left).
func flipRows(pixels []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}
