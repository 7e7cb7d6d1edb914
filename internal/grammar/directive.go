package grammar

import (
	"go/ast"
	"go/token"
	"sort"
	"strings"
	"unicode"
)

const (
	smarterrPrefix = "smarterr:"
	errorsetWord   = "errorset"
)

// Verb is a kind of directive.
type Verb int

const (
	// VerbUnknown is a smarterr: directive with an unsupported name.
	VerbUnknown Verb = iota

	// VerbErrors is smarterr:errors, an error set of a function.
	VerbErrors

	// VerbSet is smarterr:set, a standalone error set.
	VerbSet

	// VerbMod is smarterr:mod, a module for sets of the methods of a type.
	VerbMod

	// VerbErrorset is errorset, a union of existing error types.
	VerbErrorset
)

var verbValueMap = map[Verb]string{
	VerbErrors:   smarterrPrefix + "errors",
	VerbSet:      smarterrPrefix + "set",
	VerbMod:      smarterrPrefix + "mod",
	VerbErrorset: errorsetWord,
}

func (v Verb) String() string {
	s, ok := verbValueMap[v]
	if !ok {
		return "unknown"
	}

	return s
}

func verbOf(name string) Verb {
	for verb, v := range verbValueMap {
		if v == name {
			return verb
		}
	}

	return VerbUnknown
}

// Directive is a directive found in a comment group.
type Directive struct {
	Verb Verb

	// Name is the directive name as written.
	Name string

	// Text is the payload with continuation lines joined by line feeds.
	Text string

	Pos   token.Pos
	End   token.Pos
	Group *ast.CommentGroup

	segments []segment
}

// segment maps a line of the payload to the file.
type segment struct {
	offset int
	pos    token.Pos
}

// At maps an offset of the payload text to the file position.
func (d *Directive) At(offset int) token.Pos {
	i := sort.Search(len(d.segments), func(i int) bool {
		return d.segments[i].offset > offset
	}) - 1
	if i < 0 {
		return d.Pos
	}

	s := d.segments[i]
	return s.pos + token.Pos(offset-s.offset)
}

// Blank checks if the directive has no payload.
func (d *Directive) Blank() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Split extracts directives of the comment group.
func Split(group *ast.CommentGroup) []*Directive {
	var res []*Directive
	var cur *Directive
	for _, c := range group.List {
		if name := directiveName(c.Text); name != "" {
			start := 2 + len(name)
			cur = &Directive{
				Verb:  verbOf(name),
				Name:  name,
				Text:  c.Text[start:],
				Pos:   c.Pos(),
				End:   c.End(),
				Group: group,
				segments: []segment{
					{offset: 0, pos: c.Pos() + token.Pos(start)},
				},
			}
			res = append(res, cur)
			continue
		}

		if cur != nil && IsContinuationLine(c.Text) {
			cur.Text += "\n"
			cur.segments = append(cur.segments, segment{offset: len(cur.Text), pos: c.Pos() + 2})
			cur.Text += c.Text[2:]
			cur.End = c.End()
			continue
		}

		cur = nil
	}

	return res
}

// FileDirectives extracts directives of all comment groups of the file.
func FileDirectives(file *ast.File) []*Directive {
	var res []*Directive
	for _, group := range file.Comments {
		res = append(res, Split(group)...)
	}

	return res
}

// IsDirectiveLine checks if the comment line starts a directive.
func IsDirectiveLine(text string) bool {
	return directiveName(text) != ""
}

// IsContinuationLine checks if the comment line is indented non-blank text.
func IsContinuationLine(text string) bool {
	body, ok := strings.CutPrefix(text, "//")
	if !ok || body == "" {
		return false
	}
	if body[0] != ' ' && body[0] != '\t' {
		return false
	}

	return strings.TrimSpace(body) != ""
}

func directiveName(text string) string {
	body, ok := strings.CutPrefix(text, "//")
	if !ok {
		return ""
	}

	if strings.HasPrefix(body, smarterrPrefix) {
		end := strings.IndexFunc(body, unicode.IsSpace)
		if end < 0 {
			end = len(body)
		}
		return body[:end]
	}

	if rest, ok := strings.CutPrefix(body, errorsetWord); ok {
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return errorsetWord
		}
	}

	return ""
}
