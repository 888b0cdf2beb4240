package xlsbook

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// TabReader reads lines of tab-delimited text, decoding from the given
// charset when it is not UTF-8.
type TabReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// OpenTab opens fn ("" or "-" means stdin) for reading tab-delimited
// rows in the encName charset.
func OpenTab(fn, encName string) (*TabReader, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return nil, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return nil, err
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	scanner := bufio.NewScanner(bufio.NewReaderSize(r, 1<<20))
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	return &TabReader{scanner: scanner, closer: r}, nil
}

// ReadAll returns the remaining lines.
func (tr *TabReader) ReadAll() ([]string, error) {
	var lines []string
	for tr.scanner.Scan() {
		lines = append(lines, tr.scanner.Text())
	}
	return lines, tr.scanner.Err()
}

func (tr *TabReader) Close() error { return tr.closer.Close() }
