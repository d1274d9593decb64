package widgets

import "github.com/odvcencio/stagehand/runtime"

// Column stacks children vertically.
// Children with Flex get the leftover height split between them;
// everything else takes its measured height.
type Column struct {
	Base
	children []runtime.Widget
	flex     map[runtime.Widget]int
	gap      int
}

// NewColumn creates a column from children.
func NewColumn(children ...runtime.Widget) *Column {
	return &Column{children: children}
}

// Add appends a fixed-height child.
func (c *Column) Add(child runtime.Widget) *Column {
	c.children = append(c.children, child)
	return c
}

// AddFlex appends a child that shares leftover height by weight.
func (c *Column) AddFlex(child runtime.Widget, weight int) *Column {
	if weight < 1 {
		weight = 1
	}
	if c.flex == nil {
		c.flex = make(map[runtime.Widget]int)
	}
	c.flex[child] = weight
	c.children = append(c.children, child)
	return c
}

// SetGap sets the blank rows between children.
func (c *Column) SetGap(gap int) *Column {
	if gap >= 0 {
		c.gap = gap
	}
	return c
}

// ChildWidgets returns the children for tree walks.
func (c *Column) ChildWidgets() []runtime.Widget {
	return c.children
}

// Measure returns the stacked size of all children.
func (c *Column) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	height := 0
	for i, child := range c.children {
		size := child.Measure(constraints)
		if size.Width > width {
			width = size.Width
		}
		height += size.Height
		if i > 0 {
			height += c.gap
		}
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: height})
}

// Layout assigns rows to children top to bottom.
func (c *Column) Layout(bounds runtime.Rect) {
	c.Base.Layout(bounds)

	childConstraints := runtime.Constraints{
		MaxWidth:  bounds.Width,
		MaxHeight: bounds.Height,
	}

	fixed := 0
	weights := 0
	for _, child := range c.children {
		if w, ok := c.flex[child]; ok {
			weights += w
			continue
		}
		fixed += child.Measure(childConstraints).Height
	}
	fixed += c.gap * maxInt(len(c.children)-1, 0)

	leftover := bounds.Height - fixed
	if leftover < 0 {
		leftover = 0
	}

	y := bounds.Y
	for _, child := range c.children {
		h := 0
		if w, ok := c.flex[child]; ok && weights > 0 {
			h = leftover * w / weights
		} else {
			h = child.Measure(childConstraints).Height
		}
		if y+h > bounds.Y+bounds.Height {
			h = bounds.Y + bounds.Height - y
			if h < 0 {
				h = 0
			}
		}
		child.Layout(runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: h})
		y += h + c.gap
	}
}

// Render draws all children.
func (c *Column) Render(ctx runtime.RenderContext) {
	for _, child := range c.children {
		if bp, ok := child.(runtime.BoundsProvider); ok {
			child.Render(ctx.Sub(bp.Bounds()))
			continue
		}
		child.Render(ctx)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
