package bitvec_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
)

// Example demonstrates basic single-bit access and ranged clearing.
func Example() {
	bs, err := bitvec.New(16)
	if err != nil {
		log.Fatal(err)
	}
	defer bs.Close()

	_ = bs.Set(3, true)

	on, _ := bs.Get(3)
	fmt.Println(on)

	_, _ = bs.ClearRange(0, 8)

	on, _ = bs.Get(3)
	fmt.Println(on)
	// Output:
	// true
	// false
}

// ExampleBitset_Write copies a 12-bit sequence to a non-byte-aligned
// offset and reads it back.
func ExampleBitset_Write() {
	bs, err := bitvec.New(24)
	if err != nil {
		log.Fatal(err)
	}
	defer bs.Close()

	if _, err := bs.Write(3, []byte{0b10110011, 0b00001111}, 12); err != nil {
		log.Fatal(err)
	}

	back := make([]byte, 2)
	if _, err := bs.Read(3, back, 12); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%08b %08b\n", back[0], back[1])
	// Output: 10110011 00001111
}

// ExampleBitset_ResizeZero shows the delta-removed sign convention:
// positive on shrink, negative on growth.
func ExampleBitset_ResizeZero() {
	bs, err := bitvec.New(8)
	if err != nil {
		log.Fatal(err)
	}
	defer bs.Close()

	delta, _ := bs.ResizeZero(20)
	fmt.Println(delta, bs.Len(), bs.Cap())

	delta, _ = bs.ResizeZero(4)
	fmt.Println(delta, bs.Len(), bs.Cap())
	// Output:
	// -12 20 24
	// 16 4 8
}
