// Copyright 2026 The avltree Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Dump writes a rotated, indented tree drawing of the subtree rooted
// at n to w, one value per line annotated with its balance factor.
// format renders a single value; pass nil for fmt.Sprint.
func Dump[V any, S Size, R any](w io.Writer, n *Node[V, S, R], format func(V) string) {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	dumpNode(w, n, 0, format, nil)
}

// DumpColor is Dump with the balance annotation colorized: red for
// left-heavy (-1), green for balanced (0), blue for right-heavy (+1),
// and bold yellow for anything outside {-1,0,1} (which
// CheckInvariants would reject as a transient mid-rebalance state
// leaking into a finished tree).
func DumpColor[V any, S Size, R any](w io.Writer, n *Node[V, S, R], format func(V) string) {
	if format == nil {
		format = func(v V) string { return fmt.Sprint(v) }
	}
	dumpNode(w, n, 0, format, balanceColor)
}

func balanceColor(balance int8) *color.Color {
	switch balance {
	case -1:
		return color.New(color.FgRed)
	case 0:
		return color.New(color.FgGreen)
	case 1:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgYellow, color.Bold)
	}
}

func dumpNode[V any, S Size, R any](
	w io.Writer, n *Node[V, S, R], indent int, format func(V) string, colorOf func(int8) *color.Color,
) {
	if n == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	if n.left != nil {
		dumpNode(w, n.left, indent+1, format, colorOf)
		fmt.Fprintln(w, pad+"/")
	}
	label := fmt.Sprintf("%s%s (%d)", pad, format(n.value), n.balance)
	if colorOf != nil {
		colorOf(n.balance).Fprintln(w, label)
	} else {
		fmt.Fprintln(w, label)
	}
	if n.right != nil {
		fmt.Fprintln(w, pad+"\\")
		dumpNode(w, n.right, indent+1, format, colorOf)
	}
}
