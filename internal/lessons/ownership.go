package lessons

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type resource struct {
	name string
	out  io.Writer
}

func acquire(out io.Writer, name string) *resource {
	fmt.Fprintf(out, "acquire %s\n", name)
	return &resource{name: name, out: out}
}

func (r *resource) Close() {
	fmt.Fprintf(r.out, "release %s\n", r.name)
}

// DeferCleanup shows scope-bound cleanup with defer: releases run in
// reverse acquisition order, including when the function returns early.
type DeferCleanup struct{ out io.Writer }

func (l *DeferCleanup) Run(context.Context) error {
	func() {
		a := acquire(l.out, "first")
		defer a.Close()
		b := acquire(l.out, "second")
		defer b.Close()
		fmt.Fprintln(l.out, "using both")
	}()

	// Deferred calls evaluate their arguments immediately.
	for i := 0; i < 3; i++ {
		defer fmt.Fprintf(l.out, "deferred i=%d\n", i)
	}
	fmt.Fprintln(l.out, "loop done")
	return nil
}

var (
	configOnce  sync.Once
	configValue map[string]string
	configLoads int
)

func sharedConfig() map[string]string {
	configOnce.Do(func() {
		configLoads++
		configValue = map[string]string{"mode": "demo"}
	})
	return configValue
}

// PackageStateOnce shows lazily initialised package-level state guarded
// by sync.Once, the Go counterpart of a function-local static.
type PackageStateOnce struct{ out io.Writer }

func (l *PackageStateOnce) Run(context.Context) error {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sharedConfig()
		}()
	}
	wg.Wait()

	fmt.Fprintf(l.out, "mode=%s loads=%d\n", sharedConfig()["mode"], configLoads)
	return nil
}

// SliceAliasing shows that slices are references to a shared backing
// array until append outgrows its capacity.
type SliceAliasing struct{ out io.Writer }

func (l *SliceAliasing) Run(context.Context) error {
	base := make([]int, 3, 4)
	alias := base[:2]
	alias[0] = 42
	fmt.Fprintf(l.out, "write through alias: base=%v\n", base)

	grown := append(base, 4)
	grown[1] = 7
	fmt.Fprintf(l.out, "append within capacity shares: base=%v grown=%v\n", base, grown)

	moved := append(grown, 5)
	moved[2] = 9
	fmt.Fprintf(l.out, "append past capacity copies: grown=%v moved=%v\n", grown, moved)

	independent := make([]int, len(base))
	copy(independent, base)
	independent[0] = 0
	fmt.Fprintf(l.out, "explicit copy: base=%v independent=%v\n", base, independent)
	return nil
}
