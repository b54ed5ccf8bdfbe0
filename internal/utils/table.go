package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// TablePrinter handles tabular output for report commands
type TablePrinter struct {
	w *tabwriter.Writer
}

// NewTablePrinter creates a TablePrinter writing to stdout
func NewTablePrinter() *TablePrinter {
	return NewTablePrinterTo(os.Stdout)
}

// NewTablePrinterTo creates a TablePrinter writing to the given writer
func NewTablePrinterTo(out io.Writer) *TablePrinter {
	return &TablePrinter{
		w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
	}
}

// Header prints the header row
func (t *TablePrinter) Header(columns ...string) {
	fmt.Fprintln(t.w, strings.Join(columns, "\t"))
}

// Row prints a data row
func (t *TablePrinter) Row(values ...string) {
	fmt.Fprintln(t.w, strings.Join(values, "\t"))
}

// Flush writes the buffered table
func (t *TablePrinter) Flush() {
	t.w.Flush()
}

// Bytes renders a byte count in IEC units, e.g. "1.5 GiB"
func Bytes(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// Count renders an integer with thousands separators
func Count(n int64) string {
	return humanize.Comma(n)
}

// OptionalBytes renders a possibly absent byte average, "-" when absent
func OptionalBytes(v *float64) string {
	if v == nil {
		return "-"
	}
	return Bytes(int64(*v))
}
