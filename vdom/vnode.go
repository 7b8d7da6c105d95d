package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // HTML tag name
	Attributes map[string]any // Element attributes
	Children   []*VNode
	Content    string // Text content
	OnClick    func()
}

// NewVNode creates a new VNode. An "onClick" attribute holding a func() is
// moved to OnClick so it is never rendered as an HTML attribute.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if f, ok := attributes["onClick"].(func()); ok {
			onClick = f
			delete(attributes, "onClick")
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// Attr returns the attribute value for name, or nil.
func (v *VNode) Attr(name string) any {
	if v == nil || v.Attributes == nil {
		return nil
	}
	return v.Attributes[name]
}

// Div creates a <div> VNode with the given children.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Paragraph creates a <p> VNode with the given text.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}
