// Package frontmatter extracts the metadata block at the top of a document.
//
// Two delimiters are recognised: "---" for YAML and "+++" for TOML. The
// opening delimiter must be the first line of the document and the block
// ends at the next line consisting of the same delimiter.
package frontmatter

import (
	"bytes"

	"github.com/arthur-debert/fmlabel/pkg/errors"
	"github.com/arthur-debert/fmlabel/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a frontmatter block
type Format int

const (
	None Format = iota
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "none"
	}
}

var bom = []byte("\xef\xbb\xbf")

// split locates the frontmatter block. It returns the block's format, its
// raw content and the remaining body.
func split(content []byte) (Format, []byte, []byte) {
	content = bytes.TrimPrefix(content, bom)

	var (
		format Format
		delim  []byte
	)
	switch {
	case hasDelimLine(content, "---"):
		format, delim = YAML, []byte("---")
	case hasDelimLine(content, "+++"):
		format, delim = TOML, []byte("+++")
	default:
		return None, nil, content
	}

	rest := content[lineEnd(content):]
	offset := 0
	for offset <= len(rest) {
		end := lineEnd(rest[offset:])
		line := bytes.TrimRight(rest[offset:offset+end], "\r\n")
		if bytes.Equal(bytes.TrimRight(line, " \t"), delim) {
			return format, rest[:offset], rest[offset+end:]
		}
		if end == 0 {
			break
		}
		offset += end
	}
	return None, nil, content
}

// hasDelimLine reports whether the first line of content is exactly delim
func hasDelimLine(content []byte, delim string) bool {
	end := lineEnd(content)
	line := bytes.TrimRight(content[:end], "\r\n \t")
	return string(line) == delim
}

// lineEnd returns the index just past the first newline, or len(b)
func lineEnd(b []byte) int {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return len(b)
}

// Parse decodes the frontmatter of content. The bool is false when the
// document has no frontmatter block. An empty block yields an empty,
// non-nil snapshot.
func Parse(content []byte) (types.Snapshot, bool, error) {
	format, block, _ := split(content)

	snapshot := types.Snapshot{}
	switch format {
	case None:
		return nil, false, nil
	case YAML:
		if err := yaml.Unmarshal(block, &snapshot); err != nil {
			return nil, false, errors.Wrap(err, errors.ErrFrontmatterParse, "invalid YAML frontmatter")
		}
	case TOML:
		if err := toml.Unmarshal(block, &snapshot); err != nil {
			return nil, false, errors.Wrap(err, errors.ErrFrontmatterParse, "invalid TOML frontmatter")
		}
		for k, v := range snapshot {
			snapshot[k] = normalizeTOML(v)
		}
	}
	if snapshot == nil {
		snapshot = types.Snapshot{}
	}
	return snapshot, true, nil
}

// Detect returns the format of the document's frontmatter block
func Detect(content []byte) Format {
	format, _, _ := split(content)
	return format
}

// Body returns the document without its frontmatter block
func Body(content []byte) []byte {
	_, _, body := split(content)
	return body
}

// normalizeTOML turns TOML local dates and times into strings, matching how
// yaml.v3 leaves untagged timestamps. Zone-less values are then read in the
// label compiler's time zone.
func normalizeTOML(v interface{}) interface{} {
	switch val := v.(type) {
	case toml.LocalDate:
		return val.String()
	case toml.LocalDateTime:
		return val.String()
	case toml.LocalTime:
		return val.String()
	case []interface{}:
		for i := range val {
			val[i] = normalizeTOML(val[i])
		}
		return val
	case map[string]interface{}:
		for k := range val {
			val[k] = normalizeTOML(val[k])
		}
		return val
	default:
		return v
	}
}
