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

package fastsimd

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerBox struct{ l logrus.FieldLogger }

var logger atomic.Pointer[loggerBox]

func init() {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	logger.Store(&loggerBox{l})
}

// SetLogger sets the logger used for detection diagnostics.
// A nil logger restores the default, which only reports warnings.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		d := logrus.New()
		d.SetLevel(logrus.WarnLevel)
		l = d
	}
	logger.Store(&loggerBox{l})
}

// Logger returns the logger set by SetLogger.
func Logger() logrus.FieldLogger {
	return logger.Load().l
}

func log() logrus.FieldLogger {
	return logger.Load().l
}
