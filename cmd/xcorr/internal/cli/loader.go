package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxLineBytes bounds a single line of a text signal file. Exported CSV
// rows often hold a whole signal on one line.
const maxLineBytes = 64 << 20

// ErrEmptySignal is returned for signal files without samples.
var ErrEmptySignal = errors.New("signal has no samples")

// yamlSignal is the YAML signal file layout.
type yamlSignal struct {
	Samples []float64 `yaml:"samples"`
}

// LoadSignal reads a signal file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as delimited text. The path "-" reads text from
// stdin.
func LoadSignal(path string, stdin io.Reader) ([]float64, error) {
	if path == "-" {
		return ReadTextSignal(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAMLSignal(f)
	default:
		return ReadTextSignal(f)
	}
}

// ReadTextSignal parses numbers separated by whitespace or commas. Text
// after '#' on a line is ignored.
func ReadTextSignal(r io.Reader) ([]float64, error) {
	var samples []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid sample %q", line, field)
			}
			samples = append(samples, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}
	return samples, nil
}

// ReadYAMLSignal parses a YAML document with a samples list.
func ReadYAMLSignal(r io.Reader) ([]float64, error) {
	var doc yamlSignal
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySignal
		}
		return nil, fmt.Errorf("invalid YAML signal: %w", err)
	}
	if len(doc.Samples) == 0 {
		return nil, ErrEmptySignal
	}
	return doc.Samples, nil
}
