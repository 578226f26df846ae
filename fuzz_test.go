package bitvec_test

import (
	"bytes"
	"testing"

	"github.com/hupe1980/bitvec"
)

func FuzzWriteReadRoundTrip(f *testing.F) {
	f.Add(uint8(0), []byte{0xFF}, uint16(8))
	f.Add(uint8(3), []byte{0b10110011, 0b00001111}, uint16(12))
	f.Add(uint8(7), []byte{0x01, 0x80, 0x55}, uint16(17))

	f.Fuzz(func(t *testing.T, offset uint8, data []byte, countRaw uint16) {
		if len(data) == 0 {
			return
		}

		index := int(offset)
		count := int(countRaw) % (len(data)*8 + 1)

		s, err := bitvec.New(index + count + 16)
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()

		// We expect the write and read to complete without panicking
		// for any in-range input.
		if _, err := s.Write(index, data, count); err != nil {
			t.Fatal(err)
		}

		back := make([]byte, (count+7)/8)
		if _, err := s.Read(index, back, count); err != nil {
			t.Fatal(err)
		}

		// The read-back must equal the written sequence truncated to
		// count bits.
		want := make([]byte, len(back))
		copy(want, data[:len(back)])
		if rem := count % 8; rem != 0 {
			want[len(want)-1] &= 1<<rem - 1
		}

		if !bytes.Equal(back, want) {
			t.Errorf("round trip mismatch at offset %d count %d\n got: %08b\nwant: %08b",
				index, count, back, want)
		}
	})
}
