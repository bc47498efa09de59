package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterZeroValueAcceptsAll(t *testing.T) {
	var cfg FilterConfig
	assert.True(t, cfg.Accept(Record{Flags: 0xffff, MapQ: 0}))
	assert.True(t, cfg.Accept(Record{}))
}

func TestFilterMapQ(t *testing.T) {
	cfg := FilterConfig{MinMapQ: 20}
	assert.False(t, cfg.Accept(Record{MapQ: 19}))
	assert.True(t, cfg.Accept(Record{MapQ: 20}))
	assert.True(t, cfg.Accept(Record{MapQ: 60}))
}

func TestFilterIncludeRequiresAllBits(t *testing.T) {
	// paired (0x1) and proper pair (0x2)
	cfg := FilterConfig{IncludeFlags: 0x3}
	assert.False(t, cfg.Accept(Record{Flags: 0x1}))
	assert.False(t, cfg.Accept(Record{Flags: 0x2}))
	assert.True(t, cfg.Accept(Record{Flags: 0x3}))
	assert.True(t, cfg.Accept(Record{Flags: 0x43}))
}

func TestFilterExcludeAnyBit(t *testing.T) {
	// unmapped, secondary, qc fail, duplicate
	cfg := FilterConfig{ExcludeFlags: 0x704}
	assert.False(t, cfg.Accept(Record{Flags: 0x400}))
	assert.False(t, cfg.Accept(Record{Flags: 0x100 | 0x1}))
	assert.True(t, cfg.Accept(Record{Flags: 0x1 | 0x2 | 0x40}))
}
