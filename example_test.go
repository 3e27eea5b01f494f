package netgrid_test

import (
	"fmt"
	"log"

	"github.com/aretw0/netgrid"
)

// ExampleNewSystem demonstrates the default grid and path derivation.
func ExampleNewSystem() {
	sys := netgrid.NewSystem()

	path, err := sys.DevicePath(sys.Terminal)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path)
	// Output: main/net3/term1
}

// ExampleNewNetwork demonstrates the generic arena on its own.
func ExampleNewNetwork() {
	net := netgrid.NewNetwork[string]()

	root, _ := net.Connect("root", nil)
	child, _ := net.Connect("child", &root)

	parent, _ := net.Parent(child)
	fmt.Println(parent == root)
	// Output: true
}

// ExampleNewConsole demonstrates line wrapping.
func ExampleNewConsole() {
	c := netgrid.NewConsole(5)
	for _, p := range netgrid.PacketsFromString("helloworld") {
		c.Push(p)
	}
	fmt.Println(c.Render(10))
	// Output:
	// hello
	// world
}
