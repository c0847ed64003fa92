// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trav_test

import (
	"testing"

	"code.hybscloud.com/trav"
)

func TestHeight(t *testing.T) {
	var nilNode *trav.Node[int]
	if h := nilNode.Height(); h != 0 {
		t.Fatalf("nil height got %d, want 0", h)
	}
	if h := trav.Leaf(7).Height(); h != 1 {
		t.Fatalf("leaf height got %d, want 1", h)
	}
	if h := balanced().Height(); h != 3 {
		t.Fatalf("balanced height got %d, want 3", h)
	}
	if h := leftChain(5).Height(); h != 5 {
		t.Fatalf("left chain height got %d, want 5", h)
	}
	if h := rightChain(9).Height(); h != 9 {
		t.Fatalf("right chain height got %d, want 9", h)
	}
	if h := perfect(4).Height(); h != 4 {
		t.Fatalf("perfect height got %d, want 4", h)
	}
}

func TestNewNodeStructure(t *testing.T) {
	root := trav.NewNode(2, trav.Leaf(1), trav.Leaf(3))
	if root.Value != 2 {
		t.Fatalf("value got %d, want 2", root.Value)
	}
	if root.Left == nil || root.Left.Value != 1 {
		t.Fatal("left child missing or wrong")
	}
	if root.Right == nil || root.Right.Value != 3 {
		t.Fatal("right child missing or wrong")
	}
	if root.Left.Left != nil || root.Left.Right != nil {
		t.Fatal("leaf must have no children")
	}
}
