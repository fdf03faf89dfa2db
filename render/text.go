// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Text returns an indented drawing of the tree captured by a Scene, one
// line per entry. Leaves are marked with "leaf". When points is true,
// the points are listed after the tree.
func Text(s Scene, points bool) string {
	if len(s.Layers) == 0 {
		return SceneString(s) + "\n"
	}

	t := treeprint.NewWithRoot(layerLabel(&s.Layers[0]))
	branches := []treeprint.Tree{t}
	for i := 1; i < len(s.Layers); i++ {
		l := &s.Layers[i]
		d := l.Depth
		if d < 1 || d > len(branches) {
			// A malformed scene, such as one read from a corrupt
			// frame. Hang the entry off the deepest known branch.
			d = len(branches)
		}
		parent := branches[d-1]
		branches = branches[:d]
		if l.Leaf {
			parent.AddNode(layerLabel(l))
		} else {
			branches = append(branches, parent.AddBranch(layerLabel(l)))
		}
	}
	if points && len(s.Points) > 0 {
		pts := t.AddMetaBranch(len(s.Points), "points")
		for _, p := range s.Points {
			pts.AddNode(p.String())
		}
	}
	return t.String()
}

func layerLabel(l *Layer) string {
	if l.Leaf {
		return fmt.Sprintf("%s leaf count=%d", l.Bounds, l.Count)
	}
	return fmt.Sprintf("%s count=%d", l.Bounds, l.Count)
}
