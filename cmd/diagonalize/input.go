// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// sampleMatrix is used when no input is given.
var sampleMatrix = [][]float64{
	{1, 3, 3},
	{-3, -5, -3},
	{3, 3, 1},
}

var errEmptyMatrix = errors.New("matrix has no rows")

// matrixFile is the on-disk input layout; JSON documents parse as YAML.
type matrixFile struct {
	Matrix [][]float64 `yaml:"matrix"`
}

// parseMatrixFlag parses "a,b;c,d" (rows split by ';', entries by ',').
func parseMatrixFlag(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyMatrix
	}
	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// readMatrixFile loads the "matrix" key of a YAML or JSON file.
func readMatrixFile(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}
	var mf matrixFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse matrix file %s: %w", path, err)
	}
	if len(mf.Matrix) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyMatrix)
	}

	return mf.Matrix, nil
}

// resolveMatrix picks the input: --matrix, then the file argument, then the
// config file, then the sample. The second result names the source.
func resolveMatrix(flagValue string, args []string, cfg *Config) ([][]float64, string, error) {
	switch {
	case flagValue != "":
		rows, err := parseMatrixFlag(flagValue)
		return rows, "flag", err
	case len(args) > 0:
		rows, err := readMatrixFile(args[0])
		return rows, args[0], err
	case len(cfg.Matrix) > 0:
		return cfg.Matrix, cfg.loadedFrom, nil
	default:
		return sampleMatrix, "sample", nil
	}
}
