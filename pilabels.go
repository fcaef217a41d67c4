// Package pilabels converts the published RDS PI-code allocation HTML table
// into label lines for scanner tooling.
//
// Input is decoded as ISO-8859-1 and scanned with a streaming tokenizer;
// each data row inside the table body is written as one line of the form
//
//	KABC,"93.5 - FM - Los Angeles, CA - Los Angeles"
//
// in document order. Rows with fewer than seven cells are skipped and
// counted, or abort the run when Config.StrictRows is set.
package pilabels

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/cybergodev/pilabels/internal"
)

// Default configuration values.
const (
	DefaultMaxInputSize = 50 * 1024 * 1024 // 50MB
)

// SourceCharset is the fixed charset input bytes are decoded as.
const SourceCharset = internal.SourceCharset

// Config holds converter configuration.
type Config struct {
	// MaxInputSize caps the raw input size in bytes.
	MaxInputSize int

	// StrictRows aborts the run on a short row instead of skipping it.
	StrictRows bool

	// Logger receives skipped-row warnings. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MaxInputSize: DefaultMaxInputSize,
	}
}

func validateConfig(c Config) error {
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("%w: MaxInputSize must be positive", ErrInvalidConfig)
	}
	return nil
}

// Statistics contains per-run row counts.
type Statistics struct {
	RowsEmitted int
	RowsSkipped int
}

// Processor converts allocation tables to label lines.
type Processor struct {
	config *Config
	logger *zap.Logger
}

// New creates a Processor with the given configuration.
func New(config Config) (*Processor, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{config: &config, logger: logger}, nil
}

// NewWithDefaults creates a Processor with default configuration.
func NewWithDefaults() *Processor {
	p, _ := New(DefaultConfig())
	return p
}

// Convert reads an ISO-8859-1 HTML document from r and writes one label
// line per table-body row to w. Each line is written as its row closes;
// nothing is buffered or reordered across rows.
func (p *Processor) Convert(r io.Reader, w io.Writer) (Statistics, error) {
	var stats Statistics
	err := p.scan(r, func(row int, cells []string) error {
		line, err := internal.FormatLabel(cells)
		if err != nil {
			if p.config.StrictRows {
				return fmt.Errorf("row %d: %w", row, err)
			}
			stats.RowsSkipped++
			p.logger.Warn("skipping short row",
				zap.Int("row", row),
				zap.Int("cells", len(cells)))
			return nil
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write label: %w", err)
		}
		stats.RowsEmitted++
		return nil
	})
	return stats, err
}

// Rows reads an ISO-8859-1 HTML document from r and returns the raw cells
// of each table-body row. Rows shorter than the seven fields the label
// format reads follow the same skip/strict policy as Convert.
func (p *Processor) Rows(r io.Reader) ([][]string, Statistics, error) {
	var stats Statistics
	var rows [][]string
	err := p.scan(r, func(row int, cells []string) error {
		if len(cells) < internal.LabelFieldCount {
			if p.config.StrictRows {
				return fmt.Errorf("row %d: %w", row, internal.ErrShortRow)
			}
			stats.RowsSkipped++
			p.logger.Warn("skipping short row",
				zap.Int("row", row),
				zap.Int("cells", len(cells)))
			return nil
		}
		rows = append(rows, cells)
		stats.RowsEmitted++
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return rows, stats, nil
}

// scan decodes, tokenizes, and walks the document, calling onRow with each
// completed table-body row and its 1-based position in the body.
func (p *Processor) scan(r io.Reader, onRow func(row int, cells []string) error) error {
	capped := &cappedReader{r: r, max: p.config.MaxInputSize}
	row := 0
	scanner := internal.NewTableScanner(func(cells []string) error {
		row++
		return onRow(row, cells)
	})
	z := html.NewTokenizer(internal.NewSourceReader(capped))
	return scanner.Scan(z)
}

// cappedReader fails with ErrInputTooLarge once more than max raw bytes
// have been read, so oversized input is rejected without buffering it.
type cappedReader struct {
	r    io.Reader
	max  int
	read int
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	if c.read > c.max {
		return n, fmt.Errorf("%w: size=%d, max=%d", ErrInputTooLarge, c.read, c.max)
	}
	return n, err
}

// Convert converts using default configuration.
func Convert(r io.Reader, w io.Writer) (Statistics, error) {
	return NewWithDefaults().Convert(r, w)
}

// ConvertBytes converts an in-memory document and returns the label lines.
func ConvertBytes(data []byte) (string, Statistics, error) {
	var buf bytes.Buffer
	stats, err := NewWithDefaults().Convert(bytes.NewReader(data), &buf)
	if err != nil {
		return "", stats, err
	}
	return buf.String(), stats, nil
}
