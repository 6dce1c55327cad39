package render

// SystemRenderer is implemented by every view that draws
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}
