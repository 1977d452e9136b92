package processor

import (
	"bytes"
	"encoding/xml"
	"html"
	"regexp"
	"strings"
)

var (
	// Paragraph start tags (never the self-closing <w:p/> or <w:pPr>) and
	// end tags. Paragraphs nest inside text boxes.
	paragraphTagPattern = regexp.MustCompile(`<w:p(?:\s[^>]*[^/])?>|</w:p>`)
	textRunPattern      = regexp.MustCompile(`(?s)(<w:t(?:\s[^>]*[^/])?>)(.*?)(</w:t>)`)
	tokenPattern        = regexp.MustCompile(`\{\{([^{}<>]+)\}\}`)
)

const preserveOpen = `<w:t xml:space="preserve">`

// paragraph is the byte range of one w:p element. children are the
// paragraphs nested in it, e.g. inside a w:txbxContent text box.
type paragraph struct {
	start, end int
	children   []*paragraph
}

// parseParagraphs returns the outermost paragraphs of data in document
// order. Unbalanced tags are ignored.
func parseParagraphs(data []byte) []*paragraph {
	var top []*paragraph
	var stack []*paragraph
	for _, m := range paragraphTagPattern.FindAllIndex(data, -1) {
		if data[m[0]+1] != '/' {
			stack = append(stack, &paragraph{start: m[0]})
			continue
		}
		if len(stack) == 0 {
			continue
		}
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p.end = m[1]
		if len(stack) == 0 {
			top = append(top, p)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, p)
		}
	}
	return top
}

// ownRuns returns the text runs of p that are not inside a nested paragraph,
// as submatch indexes into data.
func (p *paragraph) ownRuns(data []byte) [][]int {
	var runs [][]int
	for _, region := range p.ownRegions() {
		for _, r := range textRunPattern.FindAllSubmatchIndex(data[region[0]:region[1]], -1) {
			for i := range r {
				r[i] += region[0]
			}
			runs = append(runs, r)
		}
	}
	return runs
}

// ownRegions are the ranges of p between its nested paragraphs.
func (p *paragraph) ownRegions() [][2]int {
	var regions [][2]int
	from := p.start
	for _, c := range p.children {
		regions = append(regions, [2]int{from, c.start})
		from = c.end
	}
	return append(regions, [2]int{from, p.end})
}

// Fill returns a copy of d with every {{KEY}} found in ctx replaced by its
// value. Tokens split across runs are found by joining the text runs of each
// paragraph; the merged text lands in the first run and the rest are
// emptied. Paragraphs nested in text boxes are filled on their own. Tokens
// without a value are left as they are.
func (d *Document) Fill(ctx map[string]string) *Document {
	out := &Document{parts: make([]part, len(d.parts))}
	for i, p := range d.parts {
		out.parts[i] = p
		if textPart(p.header.Name) {
			out.parts[i].data = fillXML(p.data, ctx)
		}
	}
	return out
}

func fillXML(data []byte, ctx map[string]string) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data))
	last := 0
	for _, p := range parseParagraphs(data) {
		buf.Write(data[last:p.start])
		fillParagraph(&buf, data, p, ctx)
		last = p.end
	}
	buf.Write(data[last:])
	return buf.Bytes()
}

func fillParagraph(buf *bytes.Buffer, data []byte, p *paragraph, ctx map[string]string) {
	runs := p.ownRuns(data)

	var joined strings.Builder
	for _, r := range runs {
		joined.Write(data[r[4]:r[5]])
	}

	replaced := false
	merged := tokenPattern.ReplaceAllStringFunc(joined.String(), func(token string) string {
		value, ok := ctx[token[2:len(token)-2]]
		if !ok {
			return token
		}
		replaced = true
		return escapeText(value)
	})

	next := 0
	last := p.start
	writeOwn := func(end int) {
		for next < len(runs) && runs[next][1] <= end {
			r := runs[next]
			if replaced {
				buf.Write(data[last:r[0]])
				if next == 0 {
					buf.WriteString(preserveOpen)
					buf.WriteString(merged)
				} else {
					buf.Write(data[r[2]:r[3]])
				}
				buf.Write(data[r[6]:r[7]])
				last = r[1]
			}
			next++
		}
		buf.Write(data[last:end])
		last = end
	}

	for _, c := range p.children {
		writeOwn(c.start)
		fillParagraph(buf, data, c, ctx)
		last = c.end
	}
	writeOwn(p.end)
}

func escapeText(s string) string {
	var buf strings.Builder
	// strings.Builder never fails a write.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// paragraphs returns the plain text of every paragraph in data, a text box
// paragraph right after the paragraph holding it.
func paragraphs(data []byte) []string {
	var out []string
	var walk func(p *paragraph)
	walk = func(p *paragraph) {
		var text strings.Builder
		for _, r := range p.ownRuns(data) {
			text.Write(data[r[4]:r[5]])
		}
		out = append(out, html.UnescapeString(text.String()))
		for _, c := range p.children {
			walk(c)
		}
	}
	for _, p := range parseParagraphs(data) {
		walk(p)
	}
	return out
}

// Paragraphs returns the plain text of each body paragraph, table cells
// included, in document order.
func (d *Document) Paragraphs() []string {
	data, ok := d.Part(mainPart)
	if !ok {
		return nil
	}
	return paragraphs(data)
}

// Text returns the body paragraphs joined by newlines.
func (d *Document) Text() string {
	return strings.Join(d.Paragraphs(), "\n")
}

// Placeholders lists the distinct {{KEY}} names found in the body, headers
// and footers, in order of first appearance.
func (d *Document) Placeholders() []string {
	var names []string
	seen := make(map[string]bool)

	for _, p := range d.parts {
		if !textPart(p.header.Name) {
			continue
		}
		for _, text := range paragraphs(p.data) {
			for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
				if !seen[m[1]] {
					seen[m[1]] = true
					names = append(names, m[1])
				}
			}
		}
	}
	return names
}
