package processor

import (
	"regexp"
	"strconv"
)

var (
	pageSizePattern = regexp.MustCompile(`<w:pgSz\b[^>]*>`)
	attrPattern     = regexp.MustCompile(`w:(w|h|orient)="([^"]*)"`)
)

// PageLayout is the page geometry of the last section, in points.
type PageLayout struct {
	Width     float64
	Height    float64
	Landscape bool
}

// A4 portrait, used when the document declares no page size.
var defaultLayout = PageLayout{Width: 595.3, Height: 841.9}

// Layout reads w:pgSz from the body. An explicit w:orient wins; otherwise a
// page wider than tall counts as landscape.
func (d *Document) Layout() PageLayout {
	layout := defaultLayout

	data, ok := d.Part(mainPart)
	if !ok {
		return layout
	}
	tags := pageSizePattern.FindAll(data, -1)
	if len(tags) == 0 {
		return layout
	}

	orient := ""
	for _, m := range attrPattern.FindAllSubmatch(tags[len(tags)-1], -1) {
		switch string(m[1]) {
		case "w":
			if v := twipsToPoints(string(m[2])); v > 0 {
				layout.Width = v
			}
		case "h":
			if v := twipsToPoints(string(m[2])); v > 0 {
				layout.Height = v
			}
		case "orient":
			orient = string(m[2])
		}
	}

	if orient != "" {
		layout.Landscape = orient == "landscape"
	} else {
		layout.Landscape = layout.Width > layout.Height
	}
	return layout
}

// twipsToPoints converts twentieths of a point to points.
func twipsToPoints(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v / 20
}
