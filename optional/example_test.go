package optional_test

import (
	"fmt"

	"github.com/charmingruby/opt/fp"
	"github.com/charmingruby/opt/optional"
	"github.com/charmingruby/opt/value"
)

func ExampleOfNullable() {
	var nickname *string
	display := optional.
		OfNullable(value.FromPtr(nickname)).
		OrElseGet(fp.Constant(value.Of("anonymous")))
	fmt.Println(display)
	// Output:
	// anonymous
}

func ExampleMap() {
	user := optional.Some("gustavo")
	greeting := optional.Map(user, func(v value.Value[string]) value.Value[string] {
		return value.Of("hello, " + v.UnsafeUnwrap())
	})
	fmt.Println(greeting)
	// Output:
	// Optional[hello, gustavo]
}

func ExampleFlatMap() {
	sessions := map[string]string{"gustavo": "token-1"}
	lookup := func(v value.Value[string]) value.Value[string] {
		token, ok := sessions[v.UnsafeUnwrap()]
		return value.FromOk(token, ok)
	}

	flat := optional.FlatMap(optional.Some("gustavo"), lookup)
	if raw, ok := flat.Value(); ok {
		fmt.Println(raw)
	}
	// Output:
	// token-1
}
