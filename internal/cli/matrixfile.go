package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// matrixFile is the TOML layout accepted by analyze:
//
//	columns = [
//	  [-1, 1, 1, 0],
//	  [1, -1, 0, 0],
//	]
type matrixFile struct {
	Columns [][]float64 `toml:"columns" json:"columns"`
}

// readMatrixFile loads raw arc columns from path.
//
// Supported layouts, chosen by extension:
//   - .json: a bare array of columns, or an object {"columns": [...]}.
//   - .toml: a top-level "columns" array of arrays.
func readMatrixFile(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSONMatrix(data)
	case ".toml":
		var mf matrixFile
		if err := toml.Unmarshal(data, &mf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return mf.Columns, nil
	default:
		return nil, fmt.Errorf("unsupported matrix file %q (want .json or .toml)", path)
	}
}

func decodeJSONMatrix(data []byte) ([][]float64, error) {
	var cols [][]float64
	if err := json.Unmarshal(data, &cols); err == nil {
		return cols, nil
	}
	var mf matrixFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse json matrix: %w", err)
	}

	return mf.Columns, nil
}
