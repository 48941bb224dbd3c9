package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolOptions_Defaults(t *testing.T) {
	opts := PoolOptions{}.withDefaults()

	assert.Equal(t, int32(25), opts.MaxConns)
	assert.Equal(t, int32(5), opts.MinConns)
	assert.Equal(t, 5*time.Second, opts.PingTimeout)
}

func TestPoolOptions_ExplicitValuesKept(t *testing.T) {
	opts := PoolOptions{MaxConns: 50, MinConns: 10, PingTimeout: time.Second}.withDefaults()

	assert.Equal(t, int32(50), opts.MaxConns)
	assert.Equal(t, int32(10), opts.MinConns)
	assert.Equal(t, time.Second, opts.PingTimeout)
}

func TestNewPostgreSQLDB_BadDSN(t *testing.T) {
	_, err := NewPostgreSQLDB("://not-a-valid-url", PoolOptions{})
	assert.Error(t, err)
}
