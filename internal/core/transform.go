package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JonMunkholm/maxutil/internal/logging"
)

var (
	// ErrNoInputPath is returned when TransformFile is called without an input path.
	ErrNoInputPath = errors.New("no input file provided")

	// ErrNoOutputPath is returned when the header is valid but there is
	// nowhere to write the result.
	ErrNoOutputPath = errors.New("no output file provided")
)

// Transformer appends a MaxUtil column to equipment CSV data.
// A Transformer holds no per-run state and may be reused.
type Transformer struct {
	opts Options
}

// New creates a Transformer. It rejects options that could never produce
// valid output.
func New(opts Options) (*Transformer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Transformer{opts: opts}, nil
}

// Validate checks that the options are usable.
// Returns an error describing all validation failures.
func (o Options) Validate() error {
	var errs []error

	if o.ValueColumn == "" {
		errs = append(errs, errors.New("value column name is required"))
	}
	if o.UtilizationColumn == "" {
		errs = append(errs, errors.New("utilization column name is required"))
	}
	if o.MaxUtilColumn == "" {
		errs = append(errs, errors.New("max util column name is required"))
	}
	if o.Digits < 0 {
		errs = append(errs, fmt.Errorf("digits (%d) must be non-negative", o.Digits))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid options: %w", errors.Join(errs...))
	}
	return nil
}

// decoder is an input whose header has already been read.
type decoder struct {
	csv     *csv.Reader
	counter *CountingReader
	header  []string
	index   HeaderIndex
}

// openDecoder reads and validates the header. A missing required column
// yields HeaderValid=false and a nil error; only read failures are errors.
func (t *Transformer) openDecoder(r io.Reader) (*decoder, Result, error) {
	res := Result{Skipped: make(map[SkipReason]int)}

	in, counter := WrapInput(r)
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1 // row shape is checked per row
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		res.MissingColumns = []string{t.opts.ValueColumn, t.opts.UtilizationColumn}
		res.BytesRead = counter.BytesRead
		return nil, res, nil
	}
	if err != nil {
		return nil, res, fmt.Errorf("read header: %w", err)
	}

	idx, err := ValidateHeader(header, t.opts.ValueColumn, t.opts.UtilizationColumn)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			res.MissingColumns = schemaErr.Missing
			res.BytesRead = counter.BytesRead
			return nil, res, nil
		}
		return nil, res, err
	}

	res.HeaderValid = true
	return &decoder{csv: cr, counter: counter, header: header, index: idx}, res, nil
}

// Transform reads CSV from r and writes the augmented CSV to w.
// Nothing is written to w when the header is invalid.
func (t *Transformer) Transform(ctx context.Context, r io.Reader, w io.Writer) (Result, error) {
	start := time.Now()

	dec, res, err := t.openDecoder(r)
	if err != nil || !res.HeaderValid {
		res.Duration = time.Since(start)
		return res, err
	}

	res, err = t.run(ctx, dec, w, res)
	res.Duration = time.Since(start)
	return res, err
}

// TransformFile transforms inputPath into outputPath.
//
// The output file is created only after the header validates, so a header
// failure leaves outputPath untouched. Both files are closed on every path.
func (t *Transformer) TransformFile(ctx context.Context, inputPath, outputPath string) (res Result, err error) {
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	if inputPath == "" {
		return res, ErrNoInputPath
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return res, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	dec, res, err := t.openDecoder(in)
	if err != nil {
		return res, fmt.Errorf("%s: %w", inputPath, err)
	}
	if !res.HeaderValid {
		logging.FromContext(ctx).Debug("header validation failed",
			"input", inputPath,
			"missing", res.MissingColumns,
		)
		return res, nil
	}

	if outputPath == "" {
		return res, ErrNoOutputPath
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return res, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return t.run(ctx, dec, out, res)
}

// run writes the output header and streams every data row through evaluate.
func (t *Transformer) run(ctx context.Context, dec *decoder, w io.Writer, res Result) (Result, error) {
	logger := logging.WithFields(ctx, "columns", len(dec.header))

	cw := csv.NewWriter(w)
	cw.UseCRLF = t.opts.UseCRLF

	outHeader := make([]string, 0, len(dec.header)+1)
	outHeader = append(outHeader, dec.header...)
	outHeader = append(outHeader, t.opts.MaxUtilColumn)
	if err := cw.Write(outHeader); err != nil {
		return res, fmt.Errorf("write header: %w", err)
	}

	var written []float64

	for {
		record, err := dec.csv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.BytesRead = dec.counter.BytesRead
			return res, fmt.Errorf("read row: %w", err)
		}
		res.RowsRead++

		line, _ := dec.csv.FieldPos(0)
		row := NewRow(line, record, len(dec.header), dec.index)

		maxUtil, verr := t.evaluate(row)
		if verr != nil {
			res.Skipped[verr.Reason]++
			logger.Debug("row skipped",
				"line", row.Line,
				"reason", verr.Reason,
				"error", verr.Error(),
			)
			continue
		}

		if err := cw.Write(row.Record(maxUtil.String())); err != nil {
			return res, fmt.Errorf("write row at line %d: %w", row.Line, err)
		}
		res.RowsWritten++

		if maxUtil.Finite() {
			written = append(written, maxUtil.Value)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return res, fmt.Errorf("flush output: %w", err)
	}

	res.BytesRead = dec.counter.BytesRead
	res.Summary = summarize(written)
	return res, nil
}
