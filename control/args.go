// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package control

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Args is the argument list of a single control message, as decoded by the
// transport.
type Args []interface{}

func (a Args) expect(n int) error {
	if len(a) != n {
		return errors.Errorf("expected %d argument(s), got %d", n, len(a))
	}
	return nil
}

// Float returns argument i as a float64.
//
// Any numeric type is accepted, as are strings holding a number and booleans
// (as 0 or 1).
func (a Args) Float(i int) (float64, error) {
	if i < 0 || i >= len(a) {
		return 0, errors.Errorf("missing argument #%d", i)
	}

	switch t := a[i].(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "argument #%d is not a number", i)
		}
		return v, nil
	default:
		return 0, errors.Errorf("argument #%d has unsupported type %T", i, t)
	}
}

// Token returns argument i as a string.
//
// Non-string arguments are rendered with their default format.
func (a Args) Token(i int) (string, error) {
	if i < 0 || i >= len(a) {
		return "", errors.Errorf("missing argument #%d", i)
	}

	switch t := a[i].(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return fmt.Sprint(t), nil
	}
}
