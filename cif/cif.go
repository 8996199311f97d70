package cif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//Loop is one loop_ table: the declared column tags, in order, and the
//data rows, each with exactly one value per column.
type Loop struct {
	Tags []string
	Rows [][]string
}

//Column returns the index of the given tag among the loop columns, or
//-1 if the loop doesn't declare it. Tags are case-insensitive.
func (L *Loop) Column(tag string) int {
	tag = strings.ToLower(tag)
	for i, t := range L.Tags {
		if t == tag {
			return i
		}
	}
	return -1
}

//Block is one data_ block: its name, the scalar tags, and the loop
//tables, in file order.
type Block struct {
	Name  string
	Tags  map[string]string
	Loops []*Loop
}

//Str returns the raw value of a scalar tag. Unknown tags are an error;
//so are the CIF null values "." and "?".
func (B *Block) Str(tag string) (string, error) {
	v, ok := B.Tags[strings.ToLower(tag)]
	if !ok {
		return "", Error{msg: "Tag not present in data block: " + tag, deco: []string{"Str"}}
	}
	if v == "." || v == "?" {
		return "", Error{msg: "Tag has no value (. or ?): " + tag, deco: []string{"Str"}}
	}
	return v, nil
}

//Float returns the value of a scalar tag as a float64. A trailing
//standard uncertainty, as in "5.6402(2)", is stripped.
func (B *Block) Float(tag string) (float64, error) {
	v, err := B.Str(tag)
	if err != nil {
		return 0, errDecorate(err, "Float")
	}
	f, err := ParseNumeric(v)
	if err != nil {
		return 0, Error{msg: fmt.Sprintf("Tag %s: %s", tag, err.Error()), deco: []string{"Float"}}
	}
	return f, nil
}

//Int returns the value of a scalar tag as an int.
func (B *Block) Int(tag string) (int, error) {
	f, err := B.Float(tag)
	if err != nil {
		return 0, errDecorate(err, "Int")
	}
	return int(f), nil
}

//Loop returns the first loop of the block declaring the given tag, or
//nil if there is none.
func (B *Block) Loop(tag string) *Loop {
	for _, l := range B.Loops {
		if l.Column(tag) >= 0 {
			return l
		}
	}
	return nil
}

//ParseNumeric parses a CIF numeric value, stripping the parenthesized
//standard uncertainty if present.
func ParseNumeric(s string) (float64, error) {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse numeric value '%s'", s)
	}
	return f, nil
}

//token is one syntactic unit of a CIF file. Quoted and text-field
//tokens never act as keywords, whatever their content.
type token struct {
	text   string
	quoted bool
	line   int
}

func (t token) keyword() string {
	if t.quoted {
		return ""
	}
	return strings.ToLower(t.text)
}

//Read parses a whole CIF file into its data blocks. Content before the
//first data_ line (comments, empty lines) is ignored. The format-level
//invariants are enforced: tags are unique within a block, loop columns
//are declared before their rows, and rows have exactly one value per
//column.
func Read(r io.Reader) ([]*Block, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	var blocks []*Block
	var cur *Block
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		kw := t.keyword()
		switch {
		case strings.HasPrefix(kw, "data_"):
			cur = &Block{Name: t.text[len("data_"):], Tags: map[string]string{}}
			blocks = append(blocks, cur)
			i++
		case cur == nil:
			i++ //junk before the first block
		case kw == "loop_":
			var loop *Loop
			loop, i, err = readLoop(tokens, i+1)
			if err != nil {
				return nil, errDecorate(err, "Read")
			}
			cur.Loops = append(cur.Loops, loop)
		case strings.HasPrefix(kw, "_"):
			if i+1 >= len(tokens) {
				return nil, Error{msg: fmt.Sprintf("Tag %s at line %d has no value", t.text, t.line), deco: []string{"Read"}}
			}
			name := strings.ToLower(t.text)
			if _, dup := cur.Tags[name]; dup {
				return nil, Error{msg: fmt.Sprintf("Duplicated tag %s at line %d", t.text, tokens[i].line), deco: []string{"Read"}}
			}
			cur.Tags[name] = tokens[i+1].text
			i += 2
		default:
			return nil, Error{msg: fmt.Sprintf("Stray value '%s' at line %d", t.text, t.line), deco: []string{"Read"}}
		}
	}
	return blocks, nil
}

//readLoop parses a loop_ table starting at the column declarations. It
//returns the loop and the index of the first token after it.
func readLoop(tokens []token, i int) (*Loop, int, error) {
	loop := new(Loop)
	for i < len(tokens) && strings.HasPrefix(tokens[i].keyword(), "_") {
		loop.Tags = append(loop.Tags, strings.ToLower(tokens[i].text))
		i++
	}
	if len(loop.Tags) == 0 {
		return nil, i, Error{msg: "loop_ without column declarations", deco: []string{"readLoop"}}
	}
	var values []string
	firstValue := i
	for i < len(tokens) {
		kw := tokens[i].keyword()
		if strings.HasPrefix(kw, "_") || kw == "loop_" || strings.HasPrefix(kw, "data_") {
			break
		}
		values = append(values, tokens[i].text)
		i++
	}
	if len(values)%len(loop.Tags) != 0 {
		line := 0
		if firstValue < len(tokens) {
			line = tokens[firstValue].line
		}
		return nil, i, Error{msg: fmt.Sprintf("loop_ near line %d: %d values don't fill rows of %d columns", line, len(values), len(loop.Tags)), deco: []string{"readLoop"}}
	}
	for k := 0; k < len(values); k += len(loop.Tags) {
		loop.Rows = append(loop.Rows, values[k:k+len(loop.Tags)])
	}
	return loop, i, nil
}

//tokenize splits the file into tokens: whitespace-separated words,
//quoted strings, and semicolon-delimited text fields. Comments run from
//an unquoted '#' to the end of the line.
func tokenize(r io.Reader) ([]token, error) {
	var ret []token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*64), 1024*1024)
	lineno := 0
	intext := false
	var text strings.Builder
	textline := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if intext {
			if strings.HasPrefix(line, ";") {
				ret = append(ret, token{text: text.String(), quoted: true, line: textline})
				intext = false
				continue
			}
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(line)
			continue
		}
		if strings.HasPrefix(line, ";") {
			intext = true
			text.Reset()
			text.WriteString(strings.TrimPrefix(line, ";"))
			textline = lineno
			continue
		}
		toks, err := tokenizeLine(line, lineno)
		if err != nil {
			return nil, err
		}
		ret = append(ret, toks...)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{msg: "Reading failed: " + err.Error(), deco: []string{"tokenize"}}
	}
	if intext {
		return nil, Error{msg: fmt.Sprintf("Unterminated text field starting at line %d", textline), deco: []string{"tokenize"}}
	}
	return ret, nil
}

//tokenizeLine splits one line into tokens. A quote ends at the matching
//quote character followed by whitespace or the end of the line, per the
//CIF 1.1 quoting rule.
func tokenizeLine(line string, lineno int) ([]token, error) {
	var ret []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			return ret, nil
		case c == '\'' || c == '"':
			end := i + 1
			for end < len(line) {
				if line[end] == c && (end+1 >= len(line) || line[end+1] == ' ' || line[end+1] == '\t') {
					break
				}
				end++
			}
			if end >= len(line) {
				return nil, Error{msg: fmt.Sprintf("Unterminated quote at line %d", lineno), deco: []string{"tokenizeLine"}}
			}
			ret = append(ret, token{text: line[i+1 : end], quoted: true, line: lineno})
			i = end + 1
		default:
			end := i
			for end < len(line) && line[end] != ' ' && line[end] != '\t' && line[end] != '\r' {
				end++
			}
			ret = append(ret, token{text: line[i:end], line: lineno})
			i = end
		}
	}
	return ret, nil
}
