// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

import "fmt"

// New selects a Policy by name. name is matched case-sensitively against
// "SJF", "RR", and "MLQF", per the CLI's <scheduler> argument. An
// unrecognized name is a fatal startup condition (§7): the caller should
// abort the process before accepting any requests.
func New(name string) (Policy, error) {
	switch name {
	case "SJF":
		return NewSJF(), nil
	case "RR":
		return NewRR(), nil
	case "MLQF":
		return NewMLQF(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
