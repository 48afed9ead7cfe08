package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestLimit(t *testing.T) {
	assert.Equal(t, 10, PaginatedRequest{}.Limit())
	assert.Equal(t, 10, PaginatedRequest{PerPage: -1}.Limit())
	assert.Equal(t, 25, PaginatedRequest{PerPage: 25}.Limit())
	assert.Equal(t, 100, PaginatedRequest{PerPage: 500}.Limit())
}

func TestPaginatedRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PaginatedRequest{Page: 0, PerPage: 10}.Offset())
	assert.Equal(t, 0, PaginatedRequest{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 10, PaginatedRequest{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 40, PaginatedRequest{Page: 3, PerPage: 20}.Offset())
}
