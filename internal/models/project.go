package models

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Color is the accent color of a project card
type Color string

const (
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
	ColorTeal   Color = "teal"
	ColorIndigo Color = "indigo"
	ColorRed    Color = "red"
)

// Palette lists every color a project may use
var Palette = []Color{
	ColorBlue, ColorPurple, ColorGreen, ColorOrange,
	ColorPink, ColorTeal, ColorIndigo, ColorRed,
}

// Valid reports whether c is part of the palette
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// ImageType tells the views how to frame the project image
type ImageType string

const (
	ImageLogo       ImageType = "logo"
	ImageScreenshot ImageType = "screenshot"
)

// LinkKind identifies one of the fixed external link slots
type LinkKind string

const (
	LinkWebsite  LinkKind = "website"
	LinkDemo     LinkKind = "demo"
	LinkGitHub   LinkKind = "github"
	LinkAppStore LinkKind = "appstore"
)

// LinkKinds is the display order of project links
var LinkKinds = []LinkKind{LinkWebsite, LinkDemo, LinkGitHub, LinkAppStore}

func (k LinkKind) valid() bool {
	for _, known := range LinkKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Project represents a portfolio project
type Project struct {
	ID               string              `json:"id" yaml:"id"`
	Name             string              `json:"name" yaml:"name"`
	Tagline          string              `json:"tagline,omitempty" yaml:"tagline"`
	DescriptionShort string              `json:"description_short" yaml:"description_short"`
	DescriptionLong  string              `json:"description_long,omitempty" yaml:"description_long"`
	Features         []string            `json:"features,omitempty" yaml:"features"`
	Technologies     []string            `json:"technologies" yaml:"technologies"`
	Categories       []string            `json:"categories" yaml:"categories"`
	Color            Color               `json:"color" yaml:"color"`
	Image            string              `json:"image" yaml:"image"`
	ImageType        ImageType           `json:"image_type" yaml:"image_type"`
	Links            map[LinkKind]string `json:"links" yaml:"links"`
	Space            string              `json:"space,omitempty" yaml:"space"` // hosted interactive demo
	Featured         bool                `json:"featured" yaml:"featured"`
	Order            int                 `json:"order" yaml:"order"`
}

// Link returns the URL stored for kind, if any
func (p *Project) Link(kind LinkKind) (string, bool) {
	url, ok := p.Links[kind]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// HasSpace reports whether the project can be shown in the embedded-app view
func (p *Project) HasSpace() bool {
	return p.Space != ""
}

// Clone returns a copy that shares no slices or maps with p
func (p *Project) Clone() Project {
	c := *p
	c.Features = slices.Clone(p.Features)
	c.Technologies = slices.Clone(p.Technologies)
	c.Categories = slices.Clone(p.Categories)
	c.Links = maps.Clone(p.Links)
	return c
}

// Validate checks the fields the catalog loader relies on
func (p *Project) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !p.Color.Valid() {
		errs = append(errs, fmt.Errorf("unknown color %q", p.Color))
	}
	switch p.ImageType {
	case ImageLogo, ImageScreenshot:
	default:
		errs = append(errs, fmt.Errorf("unknown image type %q", p.ImageType))
	}
	for _, c := range p.Categories {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, errors.New("category slug is blank"))
		} else if strings.ContainsFunc(c, unicode.IsSpace) {
			errs = append(errs, fmt.Errorf("category slug %q contains whitespace", c))
		}
	}
	for kind := range p.Links {
		if !kind.valid() {
			errs = append(errs, fmt.Errorf("unknown link kind %q", kind))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("project %q: %w", p.ID, errors.Join(errs...))
	}
	return nil
}

// ProjectList wraps the array of projects together with category display names
type ProjectList struct {
	Projects      []Project         `json:"projects" yaml:"projects"`
	CategoryNames map[string]string `json:"category_names,omitempty" yaml:"category_names"`
}
