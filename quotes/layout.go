// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quotes

import "strings"

// StackVertically returns a copy of the given quotes with every space
// in the text replaced by a line break, so that each word lands on its
// own line. Authors are passed through and the order is preserved.
// Other whitespace is left as is.
func StackVertically(qs []Quote) []Quote {
	vs := make([]Quote, len(qs))
	for i, q := range qs {
		vs[i] = Quote{Author: q.Author, Text: strings.ReplaceAll(q.Text, " ", "\n")}
	}
	return vs
}
