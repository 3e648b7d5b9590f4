// SPDX-License-Identifier: MIT

// Package report renders pipeline results.
//
// Text output is the stable interchange format: every value printed with four
// decimals, values separated by ',' and rows by '\n', with no trailing
// newline. Values in (-0.00005, 0], negative zero included, print as 0.0000.
// For the jacobi goal the first row holds the eigenvalues and the following
// rows are the eigenvectors (Vᵀ).
//
// The YAML document carries the same numbers rounded to four decimals plus
// run metadata, for downstream tooling.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/spkmeans"
	"gopkg.in/yaml.v3"
)

// Format selects the renderer.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat reports a format other than text or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrNoMatrix reports a result without a matrix to print.
var ErrNoMatrix = errors.New("report: result has no matrix")

// negligible is the magnitude below which a negative value prints as zero.
const negligible = 0.00005

// Write renders res to w in format f.
func Write(w io.Writer, res *spkmeans.Result, f Format) error {
	switch f {
	case FormatText, "":
		return WriteText(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// WriteText writes the text form of res.
func WriteText(w io.Writer, res *spkmeans.Result) error {
	rows, err := Rows(res)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var buf []byte
	for i, row := range rows {
		if i > 0 {
			_ = bw.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				_ = bw.WriteByte(',')
			}
			buf = strconv.AppendFloat(buf[:0], clamp(v), 'f', 4, 64)
			_, _ = bw.Write(buf)
		}
	}

	return bw.Flush()
}

// Rows returns the rows WriteText prints, unrounded.
func Rows(res *spkmeans.Result) ([][]float64, error) {
	if res == nil || res.Matrix == nil {
		return nil, ErrNoMatrix
	}
	if res.Goal != spkmeans.GoalJacobi {
		return res.Matrix.ToRows(), nil
	}
	vt, err := matrix.Transpose(res.Matrix)
	if err != nil {
		return nil, fmt.Errorf("report.Rows: %w", err)
	}
	rows := make([][]float64, 0, vt.Rows()+1)
	rows = append(rows, append([]float64(nil), res.Values...))

	return append(rows, vt.(*matrix.Dense).ToRows()...), nil
}

// clamp maps tiny negatives and negative zero to +0.
func clamp(v float64) float64 {
	if v <= 0 && v > -negligible {
		return 0
	}

	return v
}

// Round4 rounds v to four decimals after clamping.
func Round4(v float64) float64 {
	r := math.Round(clamp(v)*1e4) / 1e4
	if r == 0 {
		return 0
	}

	return r
}

// Document is the YAML report.
type Document struct {
	RunID       string      `yaml:"run_id"`
	Goal        string      `yaml:"goal"`
	K           int         `yaml:"k,omitempty"`
	EigengapK   int         `yaml:"eigengap_k,omitempty"`
	Jacobi      *JacobiInfo `yaml:"jacobi,omitempty"`
	KMeans      *KMeansInfo `yaml:"kmeans,omitempty"`
	Eigenvalues []float64   `yaml:"eigenvalues,omitempty"`
	Matrix      [][]float64 `yaml:"matrix,flow"`
}

// JacobiInfo summarizes the rotation loop.
type JacobiInfo struct {
	Rotations int  `yaml:"rotations"`
	Converged bool `yaml:"converged"`
}

// KMeansInfo summarizes the Lloyd loop.
type KMeansInfo struct {
	Iterations int   `yaml:"iterations"`
	Converged  bool  `yaml:"converged"`
	Sizes      []int `yaml:"sizes,flow"`
	Assignment []int `yaml:"assignment,flow"`
}

// NewDocument builds the YAML view of res.
func NewDocument(res *spkmeans.Result) (*Document, error) {
	rows, err := Rows(res)
	if err != nil {
		return nil, err
	}
	doc := &Document{RunID: res.RunID, Goal: string(res.Goal)}

	switch res.Goal {
	case spkmeans.GoalJacobi:
		doc.Eigenvalues = roundRow(rows[0])
		rows = rows[1:]
		doc.Jacobi = &JacobiInfo{Rotations: res.Rotations, Converged: res.JacobiConverged}
	case spkmeans.GoalSPK:
		doc.EigengapK = res.HeuristicK
		doc.Jacobi = &JacobiInfo{Rotations: res.Rotations, Converged: res.JacobiConverged}
		fallthrough
	case spkmeans.GoalKMeans:
		doc.K = res.K
		doc.KMeans = &KMeansInfo{
			Iterations: res.Iterations,
			Converged:  res.Converged,
			Sizes:      res.Sizes,
			Assignment: res.Assignment,
		}
	}

	doc.Matrix = make([][]float64, len(rows))
	for i, row := range rows {
		doc.Matrix[i] = roundRow(row)
	}

	return doc, nil
}

// WriteYAML encodes NewDocument(res) to w.
func WriteYAML(w io.Writer, res *spkmeans.Result) error {
	doc, err := NewDocument(res)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("report.WriteYAML: %w", err)
	}

	return enc.Close()
}

func roundRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = Round4(v)
	}

	return out
}
