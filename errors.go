// SPDX-License-Identifier: EPL-2.0

package foxwav

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Convert and ConvertFile matches
// exactly one of these with errors.Is.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrDecode        = errors.New("cannot decode input")
	ErrInvalidAudio  = errors.New("decoded audio is empty or has no channels")
	ErrInvalidConfig = errors.New("invalid conversion settings")
	ErrIO            = errors.New("cannot write output")
)

// Stage names the pipeline step a conversion failed in.
type Stage string

const (
	StageConfig  Stage = "config"
	StageDecode  Stage = "decode"
	StageProcess Stage = "process"
	StageEncode  Stage = "encode"
	StageWrite   Stage = "write"
)

// ConversionError is the error type returned for a failed conversion.
// It unwraps to both its Kind and the underlying cause.
type ConversionError struct {
	Stage Stage
	Path  string
	Kind  error
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("foxwav %s failed for %s: %v: %v", e.Stage, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("foxwav %s failed for %s: %v", e.Stage, e.Path, e.Kind)
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(stage Stage, path string, kind, err error) *ConversionError {
	return &ConversionError{Stage: stage, Path: path, Kind: kind, Err: err}
}
