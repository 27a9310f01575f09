package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/unirecords/internal/app/models/dto"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{1, 10, 0, 10},
		{3, 20, 40, 20},
		{0, 5, 0, 5},
		{2, 0, 10, DefaultPageSize},
		{2, 500, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		offset, limit := CalculateOffsetLimit(tt.page, tt.size)
		assert.Equal(t, tt.wantOffset, offset, "page=%d size=%d", tt.page, tt.size)
		assert.Equal(t, tt.wantLimit, limit, "page=%d size=%d", tt.page, tt.size)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 2, TotalPages: 3, PageSize: 10, TotalItems: 25}, NewPaginationInfo(25, 2, 10))
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 0}, NewPaginationInfo(0, 1, 10))
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 2, TotalPages: 2, PageSize: 10, TotalItems: 11}, NewPaginationInfo(11, 9, 10))
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := map[string][2]int{
		"/users":                  {1, 10},
		"/users?page=4&size=25":   {4, 25},
		"/users?page=-1&size=abc": {1, 10},
		"/users?size=1000":        {1, 10},
	}

	for url, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", url, nil)

		page, size := ParsePaginationParams(c)
		assert.Equal(t, want[0], page, url)
		assert.Equal(t, want[1], size, url)
	}
}

func TestParseDurationOr(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDurationOr(" 1h30m ", time.Hour))
	assert.Equal(t, time.Hour, ParseDurationOr("soon", time.Hour))
	assert.Equal(t, time.Hour, ParseDurationOr("", time.Hour))
	assert.Equal(t, time.Hour, ParseDurationOr("-5m", time.Hour))
}
