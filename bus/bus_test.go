package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"nesdiag/mapper"
)

func newTestMapper(t *testing.T) mapper.Mapper {
	t.Helper()
	prg := make([]byte, 0x4000)
	prg[0] = 0x42
	m, err := mapper.New(0, prg)
	assert.NoError(t, err)
	return m
}

func TestRAMMirroring(t *testing.T) {
	b := New(newTestMapper(t))
	b.Write(0x0000, 0x11)

	assert.Equal(t, uint8(0x11), b.Read(0x0800))
	assert.Equal(t, uint8(0x11), b.Read(0x1000))
	assert.Equal(t, uint8(0x11), b.Read(0x1800))
}

func TestPPURegisterWindowMirroredEveryEightBytes(t *testing.T) {
	b := New(newTestMapper(t))
	b.Write(0x2000, 0x55)

	assert.Equal(t, uint8(0x55), b.Read(0x2008))
	assert.Equal(t, uint8(0x55), b.Read(0x3FF8))
}

func TestReadingStatusRegisterClearsVBlank(t *testing.T) {
	b := New(newTestMapper(t))
	b.SetVBlank(true)

	v := b.Read(0x2002)
	assert.Equal(t, uint8(0x80), v)
	assert.Equal(t, uint8(0x00), b.Read(0x2002))
}

func TestSRAMReadWrite(t *testing.T) {
	b := New(newTestMapper(t))
	b.Write(0x6000, 0x77)
	b.Write(0x7FFF, 0x88)

	assert.Equal(t, uint8(0x77), b.Read(0x6000))
	assert.Equal(t, uint8(0x88), b.Read(0x7FFF))
}

func TestPRGReadDelegatesToMapper(t *testing.T) {
	b := New(newTestMapper(t))
	assert.Equal(t, uint8(0x42), b.Read(0x8000))
}

func TestUnmappedIORegionReadsZero(t *testing.T) {
	b := New(newTestMapper(t))
	assert.Equal(t, uint8(0x00), b.Read(0x4000))
}

func TestNilMapperReadsZeroAndDropsWrites(t *testing.T) {
	b := New(nil)
	assert.Equal(t, uint8(0x00), b.Read(0x8000))
	b.Write(0x8000, 0xFF) // must not panic
}
