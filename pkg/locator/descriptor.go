package locator

import (
	"fmt"
	"strings"
)

// Descriptor describes how to find one UI element. Exactly one of the
// discriminating fields (Role, TestID, Text, Placeholder, Label, AltText,
// Title, Frame, Selector) must be set; Name and Exact are modifiers for
// Role and the text-based strategies.
type Descriptor struct {
	// Role is an ARIA role (e.g. "button", "textbox").
	Role string `yaml:"role,omitempty"`

	// Name is the accessible name, used together with Role.
	Name string `yaml:"name,omitempty"`

	// TestID matches a data-testid attribute.
	TestID string `yaml:"testId,omitempty"`

	// Text matches visible text content.
	Text string `yaml:"text,omitempty"`

	// Placeholder matches an input's placeholder attribute.
	Placeholder string `yaml:"placeholder,omitempty"`

	// Label matches an associated form label.
	Label string `yaml:"label,omitempty"`

	// AltText matches an image's alt attribute.
	AltText string `yaml:"altText,omitempty"`

	// Title matches a title attribute.
	Title string `yaml:"title,omitempty"`

	// Frame locates an element inside an iframe.
	Frame *FrameDescriptor `yaml:"frame,omitempty"`

	// Selector is a raw CSS or XPath selector.
	Selector string `yaml:"selector,omitempty"`

	// Exact requires a full-string match for text-based strategies.
	Exact bool `yaml:"exact,omitempty"`
}

// FrameDescriptor locates an element inside an iframe: Selector identifies
// the frame element, Locator is a raw selector evaluated inside it.
type FrameDescriptor struct {
	Selector string `yaml:"selector"`
	Locator  string `yaml:"locator"`
}

// InvalidDescriptorError reports a descriptor that sets zero or more than
// one discriminating field. It carries the catalog key and file so the
// author knows what to fix.
type InvalidDescriptorError struct {
	Key    string
	File   string
	Fields []string
}

func (e *InvalidDescriptorError) Error() string {
	where := e.Key
	if where == "" {
		where = "element"
	}
	if e.File != "" {
		where = fmt.Sprintf("%s (%s)", e.Key, e.File)
	}
	switch len(e.Fields) {
	case 0:
		return fmt.Sprintf("invalid descriptor %s: no locator strategy set", where)
	case 1:
		return fmt.Sprintf("invalid descriptor %s: frame requires both selector and locator", where)
	default:
		return fmt.Sprintf("invalid descriptor %s: multiple locator strategies set (%s), exactly one is allowed",
			where, strings.Join(e.Fields, ", "))
	}
}

// strategies returns the names of the discriminating fields that are set.
func (d Descriptor) strategies() []string {
	var set []string
	if d.Role != "" {
		set = append(set, "role")
	}
	if d.TestID != "" {
		set = append(set, "testId")
	}
	if d.Text != "" {
		set = append(set, "text")
	}
	if d.Placeholder != "" {
		set = append(set, "placeholder")
	}
	if d.Label != "" {
		set = append(set, "label")
	}
	if d.AltText != "" {
		set = append(set, "altText")
	}
	if d.Title != "" {
		set = append(set, "title")
	}
	if d.Frame != nil {
		set = append(set, "frame")
	}
	if d.Selector != "" {
		set = append(set, "selector")
	}
	return set
}

// Validate checks that exactly one locator strategy is set. Ambiguous
// descriptors are rejected rather than resolved by precedence, so an
// authoring mistake surfaces at startup instead of silently picking
// one strategy at runtime. Key and file are used in the error message.
func (d Descriptor) Validate(key, file string) error {
	set := d.strategies()
	if len(set) == 1 {
		if d.Frame != nil && (d.Frame.Selector == "" || d.Frame.Locator == "") {
			return &InvalidDescriptorError{Key: key, File: file, Fields: []string{"frame"}}
		}
		return nil
	}
	return &InvalidDescriptorError{Key: key, File: file, Fields: set}
}
