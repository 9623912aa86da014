package enumset_test

import (
	"fmt"

	"github.com/museun/fsm"
	"github.com/museun/fsm/pkg/enumset"
)

func ExampleMustNew() {
	set := enumset.MustNew("pending", "active", "closed")

	cur := set.Start()
	prior := fsm.Next(&cur)
	fmt.Println(prior, "->", cur)
	// Output: pending -> active
}

func ExampleSet_Start() {
	set := enumset.MustNew("pending", "active", "closed")

	for m := range fsm.Once(set.Start()).Seq() {
		fmt.Println(m)
	}
	// Output:
	// pending
	// active
	// closed
}

func ExampleSet_End() {
	set := enumset.MustNew("pending", "active", "closed")

	fmt.Println(fsm.Once(set.End()).Rev().Collect())
	// Output: [closed active pending]
}

func ExampleFromYAML() {
	set, err := enumset.FromYAML([]byte("- todo\n- doing\n- done\n"))
	if err != nil {
		panic(err)
	}

	fmt.Println(set.Values())
	// Output: [todo doing done]
}
