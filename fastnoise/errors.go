// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastnoise

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

var (
	// ErrLevelUnavailable is returned when an explicitly requested level is
	// not compiled, not instantiated for the algorithm, or not supported by
	// the CPU. The factory never substitutes another level.
	ErrLevelUnavailable = errors.New("fastnoise: level unavailable")

	// ErrUnknownAlgorithm is returned for algorithms with no registered kernel.
	ErrUnknownAlgorithm = errors.New("fastnoise: unknown algorithm")

	// ErrInvalidParameter is returned when an algorithm's parameters are out
	// of range.
	ErrInvalidParameter = errors.New("fastnoise: invalid parameter")
)

// LevelError describes why a level could not be used. It unwraps to
// ErrLevelUnavailable.
type LevelError struct {
	Level     fastsimd.Level
	Algorithm AlgorithmID
	Reason    string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("fastnoise: %s unavailable at level %s: %s", e.Algorithm, e.Level, e.Reason)
}

func (e *LevelError) Unwrap() error {
	return ErrLevelUnavailable
}

// Reasons reported in LevelError.
const (
	reasonInvalid       = "not a concrete level"
	reasonNotCompiled   = "not compiled into this binary"
	reasonNotAllowed    = "excluded by factory options"
	reasonNotRegistered = "algorithm not instantiated for this level"
	reasonUnsupported   = "not supported by this CPU"
	reasonNoCandidate   = "no usable level"
)

func invalidParam(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
