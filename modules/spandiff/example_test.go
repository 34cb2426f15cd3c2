// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package spandiff_test

import (
	"fmt"
	"os"

	"github.com/antgroup/spandiff/modules/spandiff"
)

func ExampleDiff() {
	source := spandiff.Slice[string]{"a", "b", "c", "d"}
	destination := spandiff.Slice[string]{"a", "x", "c", "d"}
	for _, s := range spandiff.Diff[string](source, destination, spandiff.ThroughButTerse) {
		fmt.Println(s)
	}
	// Output:
	// unchanged(dest=0,src=0,len=1)
	// replace(dest=1,src=1,len=1)
	// unchanged(dest=2,src=2,len=2)
}

func ExampleEngine() {
	e := spandiff.NewEngine[byte]()
	e.ProcessDiff(spandiff.Slice[byte]([]byte("ab")), spandiff.Slice[byte]([]byte{}), spandiff.FastImperfect)
	fmt.Println(e.DiffReport())
	// Output:
	// [delete(src=0,len=2)]
}

func ExampleToUnified() {
	before := []string{"package main\n", "func main() {}\n"}
	after := []string{"package main\n", "import \"fmt\"\n", "func main() {}\n"}
	spans := spandiff.Diff[string](spandiff.Slice[string](before), spandiff.Slice[string](after), spandiff.ThroughButTerse)
	u := spandiff.ToUnified(&spandiff.File{Name: "main.go"}, &spandiff.File{Name: "main.go"}, spans, before, after, 1)
	_ = spandiff.NewUnifiedEncoder(os.Stdout).Encode([]*spandiff.Unified{u})
	// Output:
	// diff --spandiff a/main.go b/main.go
	// --- a/main.go
	// +++ b/main.go
	// @@ -1,2 +1,3 @@
	//  package main
	// +import "fmt"
	//  func main() {}
}
