package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}
	pg := BuildPagination(p, 45, 20)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 20, pg.Count)

	p = Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}
	pg = BuildPagination(p, 45, 5)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 5, pg.Count)
}

func TestBuildPaginationExactMultiple(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	pg := BuildPagination(p, 20, 10)
	assert.Equal(t, 2, pg.TotalPages)
	assert.False(t, pg.HasNext)
}

func TestBuildPaginationEmpty(t *testing.T) {
	p := Paging{Page: 1, PerPage: 10}
	pg := BuildPagination(p, 0, 0)
	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
