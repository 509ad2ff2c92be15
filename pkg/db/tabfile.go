package db

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/yumyai/geneplatter/internal/util"
	"github.com/yumyai/geneplatter/pkg/model"
)

// Defining possible error
var ErrInputNotFound = errors.New("input file does not exist")

// .tab annotation file holding variation records
type TabFile struct {
	Path string
}

func NewTabFile(path string) (*TabFile, error) {
	if !util.FileExists(path) {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInputNotFound, "input %q", path),
			"check the --input path",
		)
	}

	return &TabFile{Path: path}, nil
}

// Lines reads the whole file. "\n", "\r\n" and a bare "\r" all end a line
// and are dropped. Lines have no length limit.
func (tf *TabFile) Lines() ([]string, error) {
	f, err := os.Open(tf.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", tf.Path)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", tf.Path)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 1024)
	br := bufio.NewReader(r)

	for {
		chunk, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if chunk != "" {
			chunk = strings.TrimSuffix(chunk, "\n")
			chunk = strings.TrimSuffix(chunk, "\r")
			// Whatever \r is left inside ends a line of its own.
			lines = append(lines, strings.Split(chunk, "\r")...)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// Parse reads the file and folds it into the year x gene table.
func (tf *TabFile) Parse() (*model.FrequencyTable, error) {
	lines, err := tf.Lines()
	if err != nil {
		return nil, err
	}
	return model.BuildTable(lines), nil
}
