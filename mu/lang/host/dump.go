// This file is part of mu_ - https://github.com/BrickNumber5/mu_
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

package host

import (
	"io"
	"strconv"

	"github.com/BrickNumber5/mu/internal/mui"
	"github.com/BrickNumber5/mu/mu"
)

// DumpHeap dumps the interpreter's cons heap and yard to the specified
// io.Writer: a '\x1C'-prefixed run of head/tail words for every allocated
// cell in heap order, a '\x1D' separator, then the raw yard bytes. The
// format is line-oriented enough to diff across runs when chasing
// collector bugs.
func DumpHeap(i *mu.Instance, w io.Writer) error {
	ew := mui.NewErrWriter(w)
	ew.Write([]byte{'\x1C'})
	top := i.Anchor()
	b := make([]byte, 0, 24)
	for off := 8; off < top; off += 8 {
		v := mu.Value(-off)
		b = b[:0]
		b = strconv.AppendInt(b, int64(i.Head(v)), 10)
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(i.Tail(v)), 10)
		if off+8 < top {
			b = append(b, ' ')
		}
		ew.Write(b)
	}
	ew.Write([]byte{'\x1D'})
	ew.Write(i.YardBytes(0, i.YardLen()))
	return ew.Err
}
