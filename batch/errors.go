// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	ErrNoInputDir  = errors.New("batch: input directory not set")
	ErrNoOutputDir = errors.New("batch: output directory not set")
)
