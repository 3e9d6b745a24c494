package greenthread_test

import (
	"fmt"

	greenthread "github.com/joeycumines/go-greenthread"
)

// Demonstrates resuming a coroutine repeatedly, each time passing a new
// value in and receiving back whatever it yields.
func ExampleCtx_Resume_pingPong() {
	ctx := greenthread.NewCtx()

	counter := ctx.ThreadCreate(func(ctx *greenthread.Ctx, arg any) {
		n := arg.(int)
		for {
			n = ctx.Yield(n + 1).(int)
		}
	})

	fmt.Println(ctx.Resume(counter, 0))
	fmt.Println(ctx.Resume(counter, 10))
	fmt.Println(ctx.Resume(counter, 100))

	//output:
	//1
	//11
	//101
}

// Demonstrates that destructors registered during a coroutine's run fire
// in insertion order, once, as soon as it terminates.
func ExampleCtx_RegisterDestructor() {
	ctx := greenthread.NewCtx()

	worker := ctx.ThreadCreate(func(ctx *greenthread.Ctx, arg any) {
		for i := 1; i <= 3; i++ {
			i := i
			ctx.RegisterDestructor(func(any) { fmt.Println("cleanup", i) }, nil)
		}
	})

	ctx.Resume(worker, nil)

	//output:
	//cleanup 1
	//cleanup 2
	//cleanup 3
}
